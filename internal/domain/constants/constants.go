// Package constants holds string identifiers shared between config and providers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers for vote events
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// SMS providers
const (
	SMSProviderLog      = "log"
	SMSProviderTwilio   = "twilio"
	SMSProviderRabbitMQ = "rabbitmq"
)

// Next-step hints returned to clients during the authentication flow
const (
	NextStepVerifyOTP       = "verify_otp"
	NextStepFaceEnrollment  = "face_enrollment"
	NextStepFaceRecognition = "face_recognition"
	NextStepVote            = "vote"
)

// Message attributes carried on vote events
const (
	AttrRequestID     = "request_id"
	AttrTransactionID = "transaction_id"
	AttrEventType     = "event_type"
)

// EventTypeVoteCast tags vote-cast events on the wire.
const EventTypeVoteCast = "vote.cast"
