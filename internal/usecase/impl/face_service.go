package impl

import (
	"context"
	"image"
	"log/slog"
	"time"

	"votegate/config"
	deliverycontext "votegate/internal/delivery/context"
	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/domain/repository"
	"votegate/internal/domain/service"
	"votegate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMinTrainingImages   = 5
	defaultConfidenceThreshold = 100.0
)

// faceService implements the FaceUsecase interface.
type faceService struct {
	txManager  repository.TransactionManager
	store      repository.FaceStore
	detector   service.FaceDetector
	processor  service.FaceProcessor
	recognizer service.FaceRecognizer
	lock       service.VoterLock
	minImages  int
	threshold  float64
	now        func() time.Time
	logger     *slog.Logger
}

// FaceServiceParams holds dependencies for FaceService, injected by Fx.
type FaceServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Store      repository.FaceStore
	Detector   service.FaceDetector
	Processor  service.FaceProcessor
	Recognizer service.FaceRecognizer
	Lock       service.VoterLock
	Config     *config.Config
	Logger     *slog.Logger
}

// NewFaceService is the constructor for faceService.
func NewFaceService(params FaceServiceParams) usecase.FaceUsecase {
	srv := &faceService{
		txManager:  params.TxManager,
		store:      params.Store,
		detector:   params.Detector,
		processor:  params.Processor,
		recognizer: params.Recognizer,
		lock:       params.Lock,
		minImages:  defaultMinTrainingImages,
		threshold:  defaultConfidenceThreshold,
		now:        time.Now,
		logger:     params.Logger,
	}

	if params.Config != nil && params.Config.Face != nil {
		if params.Config.Face.MinTrainingImages > 0 {
			srv.minImages = params.Config.Face.MinTrainingImages
		}
		if params.Config.Face.ConfidenceThreshold > 0 {
			srv.threshold = params.Config.Face.ConfidenceThreshold
		}
	}

	return srv
}

func (srv *faceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Detect gives capture feedback. Only an unavailable detector is an error.
func (srv *faceService) Detect(ctx context.Context, encoded string) (*entity.DetectionReport, error) {
	img, err := srv.processor.Decode(encoded)
	if err != nil {
		return &entity.DetectionReport{Faces: []entity.FaceBox{}, Reason: entity.FaceReasonInvalidImage}, nil
	}

	boxes, err := srv.detector.Detect(img)
	if err != nil {
		return nil, srv.detectorError(err)
	}

	report := &entity.DetectionReport{Detected: len(boxes) == 1, Faces: boxes}
	switch len(boxes) {
	case 0:
		report.Faces = []entity.FaceBox{}
		report.Reason = entity.FaceReasonNoFace
	case 1:
		report.Reason = entity.FaceReasonDetectedOneFace
	default:
		report.Reason = entity.FaceReasonMultipleFaces
	}

	srv.log(ctx).Debug("Face detection feedback", slog.Int("faces", len(boxes)))

	return report, nil
}

// Enroll appends every usable image of the batch to the voter's training set.
// Rejected images are reported and never abort their siblings.
func (srv *faceService) Enroll(ctx context.Context, input usecase.EnrollInput) (*entity.EnrollmentResult, error) {
	if len(input.Images) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "at least one image is required")
	}

	if _, err := srv.enrollableVoter(ctx, input.VoterID); err != nil {
		return nil, err
	}

	held, release, err := srv.lock.Acquire(ctx, input.VoterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire voter lock")
	}
	defer release()
	ctx = held

	// Training may have completed while we waited for the lock.
	if _, err := srv.enrollableVoter(ctx, input.VoterID); err != nil {
		return nil, err
	}

	result := &entity.EnrollmentResult{
		VoterID:  input.VoterID,
		Required: srv.minImages,
		Rejected: []entity.ImageRejection{},
	}

	for i, encoded := range input.Images {
		crop, reason, err := srv.extractFace(encoded)
		if err != nil {
			return nil, err
		}
		if reason != "" {
			result.Rejected = append(result.Rejected, entity.ImageRejection{Index: i, Reason: reason})

			continue
		}

		data, err := srv.processor.EncodePNG(crop)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrFaceStorageFailed, err.Error())
		}
		if err := lockHeld(ctx); err != nil {
			return nil, err
		}

		total, err := srv.store.AppendTrainingImage(ctx, input.VoterID, data)
		if err != nil {
			srv.log(ctx).Error("Failed to store training image", slog.Any("error", err), slog.String("voter_id", input.VoterID.String()))

			return nil, errors.Wrap(domainerrors.ErrFaceStorageFailed, "failed to store training image")
		}
		result.ImagesSaved++
		result.TotalImages = total
	}

	if result.ImagesSaved == 0 {
		result.TotalImages, err = srv.store.CountTrainingImages(ctx, input.VoterID)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrFaceStorageFailed, "failed to count training images")
		}
	}

	srv.log(ctx).Info("Enrollment batch processed",
		slog.String("voter_id", input.VoterID.String()),
		slog.Int("saved", result.ImagesSaved),
		slog.Int("rejected", len(result.Rejected)),
		slog.Int("total", result.TotalImages),
	)

	if result.TotalImages < srv.minImages {
		return nil, errors.Wrap(domainerrors.ErrInsufficientImages.WithDetails(map[string]any{
			"images_saved": result.ImagesSaved,
			"total_images": result.TotalImages,
			"required":     srv.minImages,
			"rejected":     result.Rejected,
		}), "not enough usable images")
	}

	if _, err := srv.trainLocked(ctx, input.VoterID); err != nil {
		return nil, err
	}
	result.ModelTrained = true

	return result, nil
}

// Train builds the model from the stored set. A voter already trained keeps the existing model.
func (srv *faceService) Train(ctx context.Context, voterID uuid.UUID) (int, error) {
	voter, err := srv.findVoter(ctx, voterID)
	if err != nil {
		return 0, err
	}
	if voter.FaceModelTrained {
		return srv.storedImageCount(ctx, voterID)
	}

	held, release, err := srv.lock.Acquire(ctx, voterID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to acquire voter lock")
	}
	defer release()
	ctx = held

	voter, err = srv.findVoter(ctx, voterID)
	if err != nil {
		return 0, err
	}
	if voter.FaceModelTrained {
		return srv.storedImageCount(ctx, voterID)
	}

	return srv.trainLocked(ctx, voterID)
}

// lockHeld fails once the voter lock behind ctx has been lost.
func lockHeld(ctx context.Context) error {
	if ctx.Err() == nil {
		return nil
	}
	if cause := context.Cause(ctx); errors.Is(cause, service.ErrVoterLockLost) {
		return errors.Wrap(domainerrors.ErrFaceStorageFailed, cause.Error())
	}

	return errors.WithStack(ctx.Err())
}

// trainLocked expects ctx to come from the voter lock.
func (srv *faceService) trainLocked(ctx context.Context, voterID uuid.UUID) (int, error) {
	blobs, err := srv.store.ListTrainingImages(ctx, voterID)
	if err != nil {
		return 0, errors.Wrap(domainerrors.ErrFaceStorageFailed, "failed to list training images")
	}
	if len(blobs) == 0 {
		return 0, errors.Wrap(domainerrors.ErrNoTrainingData, "voter has no training images")
	}
	if len(blobs) < srv.minImages {
		return 0, errors.Wrap(domainerrors.ErrInsufficientImages.WithDetails(map[string]any{
			"total_images": len(blobs),
			"required":     srv.minImages,
		}), "not enough training images")
	}

	faces := make([]*image.Gray, 0, len(blobs))
	for i, blob := range blobs {
		face, err := srv.processor.DecodePNG(blob)
		if err != nil {
			return 0, errors.Wrapf(domainerrors.ErrFaceStorageFailed, "training image %d is corrupt", i)
		}
		faces = append(faces, face)
	}

	model, err := srv.recognizer.Train(voterID, faces)
	if err != nil {
		return 0, errors.Wrap(err, "failed to train face model")
	}
	// the set may have changed under another holder while we trained
	if err := lockHeld(ctx); err != nil {
		return 0, err
	}

	if err := srv.store.SaveModel(ctx, voterID, model); err != nil {
		srv.log(ctx).Error("Failed to save face model", slog.Any("error", err), slog.String("voter_id", voterID.String()))

		return 0, errors.Wrap(domainerrors.ErrFaceStorageFailed, "failed to save face model")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewVoterRepository().MarkFaceModelTrained(ctx, voterID); err != nil {
			if errors.Is(err, repository.ErrVoterAlreadyTrained) {
				return errors.Wrap(domainerrors.ErrAlreadyEnrolled, "face model already trained")
			}

			return errors.Wrap(err, "failed to mark face model trained")
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to complete training")
	}

	srv.log(ctx).Info("Face model trained", slog.String("voter_id", voterID.String()), slog.Int("images", len(faces)))

	return len(faces), nil
}

// Match decodes and normalizes the probe exactly like enrollment and scores it against the claimed model.
func (srv *faceService) Match(ctx context.Context, claimedVoterID uuid.UUID, encoded string) (*entity.MatchOutcome, error) {
	crop, reason, err := srv.extractFace(encoded)
	if err != nil {
		return nil, err
	}
	switch reason {
	case entity.FaceReasonInvalidImage:
		return nil, errors.Wrap(domainerrors.ErrInvalidImage, "probe could not be decoded")
	case entity.FaceReasonNoFace:
		return nil, errors.Wrap(domainerrors.ErrNoFaceDetected, "probe has no face")
	case entity.FaceReasonMultipleFaces:
		return nil, errors.Wrap(domainerrors.ErrMultipleFacesDetected, "probe has several faces")
	}

	model, err := srv.store.LoadModel(ctx, claimedVoterID)
	if err != nil {
		if errors.Is(err, repository.ErrFaceModelNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFaceModelNotFound, "claimed voter has no model")
		}

		return nil, errors.Wrap(domainerrors.ErrFaceStorageFailed, "failed to load face model")
	}

	label, distance, err := srv.recognizer.Predict(model, crop)
	if err != nil {
		return nil, errors.Wrap(err, "failed to score probe")
	}

	outcome := &entity.MatchOutcome{
		Confidence:     distance,
		Threshold:      srv.threshold,
		PredictedLabel: label,
	}
	switch {
	case distance > srv.threshold:
		outcome.Reason = entity.FaceReasonLowConfidence
	case label != claimedVoterID:
		outcome.Reason = entity.FaceReasonLabelMismatch
	default:
		outcome.Matched = true
	}

	srv.log(ctx).Info("Face match scored",
		slog.String("voter_id", claimedVoterID.String()),
		slog.Bool("matched", outcome.Matched),
		slog.Float64("confidence", distance),
	)

	return outcome, nil
}

// Recognize is step 3: a match completes the face step of an OTP-verified session.
func (srv *faceService) Recognize(ctx context.Context, session *entity.AuthSession, encoded string) (*entity.RecognitionResult, error) {
	switch session.State(srv.now()) {
	case entity.SessionStateOTPVerified:
	case entity.SessionStateExpired, entity.SessionStateClosed:
		return nil, errors.Wrap(domainerrors.ErrSessionExpired, "session is no longer active")
	default:
		return nil, errors.Wrap(domainerrors.ErrSessionStepOutOfOrder.WithDetails(map[string]any{
			"state": session.State(srv.now()).String(),
			"steps": session.Steps(),
		}), "face step requires an otp-verified session")
	}

	outcome, err := srv.Match(ctx, session.VoterID, encoded)
	if err != nil {
		return nil, err
	}
	if !outcome.Matched {
		return &entity.RecognitionResult{Outcome: *outcome, Session: session}, nil
	}

	var updated *entity.AuthSession

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewAuthSessionRepository()
		if err := sessionRepo.CompleteFaceStep(ctx, session.ID, srv.now()); err != nil {
			if errors.Is(err, repository.ErrSessionTransitionRejected) {
				return errors.Wrap(domainerrors.ErrSessionStepOutOfOrder, "session cannot accept the face step")
			}

			return errors.Wrap(err, "failed to complete face step")
		}

		var err error
		updated, err = sessionRepo.FindSessionByID(ctx, session.ID)

		return errors.Wrap(err, "failed to reload session")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record face step")
	}

	srv.log(ctx).Info("Face step completed", slog.String("session_id", session.ID.String()))

	return &entity.RecognitionResult{Outcome: *outcome, Session: updated}, nil
}

// Status reports the voter's enrollment progress.
func (srv *faceService) Status(ctx context.Context, voterID uuid.UUID) (*entity.FaceStatus, error) {
	voter, err := srv.findVoter(ctx, voterID)
	if err != nil {
		return nil, err
	}

	count, err := srv.storedImageCount(ctx, voterID)
	if err != nil {
		return nil, err
	}

	return &entity.FaceStatus{
		DetectorAvailable: srv.detector.Available(),
		TrainingImages:    count,
		ModelTrained:      voter.FaceModelTrained,
	}, nil
}

// extractFace returns a normalized crop, or a rejection reason for per-image failures.
// The error is reserved for failures that must abort the whole request.
func (srv *faceService) extractFace(encoded string) (*image.Gray, string, error) {
	img, err := srv.processor.Decode(encoded)
	if err != nil {
		return nil, entity.FaceReasonInvalidImage, nil
	}

	boxes, err := srv.detector.Detect(img)
	if err != nil {
		return nil, "", srv.detectorError(err)
	}

	switch len(boxes) {
	case 0:
		return nil, entity.FaceReasonNoFace, nil
	case 1:
		return srv.processor.Normalize(img, boxes[0]), "", nil
	default:
		return nil, entity.FaceReasonMultipleFaces, nil
	}
}

func (srv *faceService) detectorError(err error) error {
	if errors.Is(err, service.ErrDetectorUnavailable) {
		return errors.Wrap(domainerrors.ErrInternalError.WithDetails(map[string]any{"detector_available": false}), "face detector unavailable")
	}

	return errors.Wrap(err, "face detection failed")
}

func (srv *faceService) enrollableVoter(ctx context.Context, voterID uuid.UUID) (*entity.Voter, error) {
	voter, err := srv.findVoter(ctx, voterID)
	if err != nil {
		return nil, err
	}
	if voter.FaceModelTrained {
		return nil, errors.Wrap(domainerrors.ErrAlreadyEnrolled, "face model already trained")
	}
	if !voter.PhoneVerified {
		return nil, errors.Wrap(domainerrors.ErrSessionStepOutOfOrder.WithDetails(map[string]any{
			"required_step": "verify_otp",
		}), "phone must be verified before enrollment")
	}

	return voter, nil
}

func (srv *faceService) findVoter(ctx context.Context, voterID uuid.UUID) (*entity.Voter, error) {
	var voter *entity.Voter

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		voter, err = repoFactory.NewVoterRepository().FindVoterByID(ctx, voterID)
		if err != nil {
			if errors.Is(err, repository.ErrVoterNotFound) {
				return errors.Wrap(domainerrors.ErrVoterNotFound, "voter not found")
			}

			return errors.Wrap(err, "failed to find voter")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return voter, nil
}

func (srv *faceService) storedImageCount(ctx context.Context, voterID uuid.UUID) (int, error) {
	count, err := srv.store.CountTrainingImages(ctx, voterID)
	if err != nil {
		return 0, errors.Wrap(domainerrors.ErrFaceStorageFailed, "failed to count training images")
	}

	return count, nil
}
