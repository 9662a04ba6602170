package entity

import "github.com/google/uuid"

// Face rejection reasons reported for a single image.
const (
	FaceReasonInvalidImage    = "invalid_image"
	FaceReasonNoFace          = "no_face_detected"
	FaceReasonMultipleFaces   = "multiple_faces_detected"
	FaceReasonLowConfidence   = "confidence_above_threshold"
	FaceReasonLabelMismatch   = "label_mismatch"
	FaceReasonDetectedOneFace = "face_detected"
)

// FaceBox is a detected face region in image coordinates.
type FaceBox struct {
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Quality float64 `json:"quality"`
}

// ImageRejection explains why one enrollment image was skipped.
type ImageRejection struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// EnrollmentResult summarizes one capture batch.
type EnrollmentResult struct {
	VoterID      uuid.UUID
	ImagesSaved  int
	TotalImages  int
	Required     int
	Rejected     []ImageRejection
	ModelTrained bool
}

// MatchOutcome is the verdict of the face matcher. A rejection is a value, not an error.
type MatchOutcome struct {
	Matched        bool
	Confidence     float64 // chi-square distance, lower is closer
	Threshold      float64
	PredictedLabel uuid.UUID
	Reason         string
}

// DetectionReport is the feedback returned by the detect endpoint.
type DetectionReport struct {
	Detected bool
	Faces    []FaceBox
	Reason   string
}

// FaceStatus describes a voter's enrollment progress.
type FaceStatus struct {
	DetectorAvailable bool
	TrainingImages    int
	ModelTrained      bool
}

// RecognitionResult is the outcome of the biometric step of a session.
type RecognitionResult struct {
	Outcome MatchOutcome
	Session *AuthSession
}
