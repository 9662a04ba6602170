// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"votegate/config"
	deliverycontext "votegate/internal/delivery/context"
	"votegate/internal/domain/constants"
	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/domain/repository"
	"votegate/internal/domain/service"
	"votegate/internal/usecase"
	"votegate/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultOTPLength   = 6
	defaultOTPExpiry   = 5 * time.Minute
	defaultOTPLookback = 5
)

// otpService implements the OTPUsecase interface.
type otpService struct {
	txManager repository.TransactionManager
	hasher    service.CodeHasher
	sms       service.SMSSender
	length    int
	expiry    time.Duration
	lookback  int
	now       func() time.Time
	logger    *slog.Logger
}

// OTPServiceParams holds dependencies for OTPService, injected by Fx.
type OTPServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.CodeHasher
	SMS       service.SMSSender
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOTPService is the constructor for otpService.
func NewOTPService(params OTPServiceParams) usecase.OTPUsecase {
	srv := &otpService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		sms:       params.SMS,
		length:    defaultOTPLength,
		expiry:    defaultOTPExpiry,
		lookback:  defaultOTPLookback,
		now:       time.Now,
		logger:    params.Logger,
	}

	if params.Config != nil && params.Config.OTP != nil {
		cfg := params.Config.OTP
		if cfg.Length > 0 {
			srv.length = cfg.Length
		}
		if cfg.Expiry > 0 {
			srv.expiry = cfg.Expiry
		}
		if cfg.Lookback > 0 {
			srv.lookback = cfg.Lookback
		}
	}

	return srv
}

func (srv *otpService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue stores a new code digest and dispatches the plain code.
// Delivery failures are logged; the code stays valid and can be re-sent.
func (srv *otpService) Issue(ctx context.Context, voterID uuid.UUID, phone string, purpose entity.OTPPurpose) (*entity.IssuedCode, error) {
	if !purpose.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown otp purpose %q", purpose)
	}

	code, err := generateNumericCode(srv.length)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate code")
	}

	digest, err := srv.hasher.Hash(code)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to hash code")
	}

	now := srv.now()
	record := &entity.OneTimeCode{
		ID:         uuid.New(),
		VoterID:    voterID,
		Phone:      phone,
		CodeDigest: digest,
		Purpose:    purpose,
		ExpiresAt:  now.Add(srv.expiry),
		CreatedAt:  now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewOTPRepository().CreateCode(ctx, record)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store one-time code", slog.Any("error", err), slog.String("voter_id", voterID.String()))

		return nil, errors.Wrap(err, "failed to store one-time code")
	}

	if err := srv.sms.Send(ctx, phone, srv.message(code, purpose)); err != nil {
		srv.log(ctx).Warn("Failed to dispatch one-time code",
			slog.Any("error", err),
			slog.String("phone", util.MaskPhone(phone)),
			slog.String("purpose", purpose.String()),
		)
	}

	srv.log(ctx).Info("One-time code issued",
		slog.String("voter_id", voterID.String()),
		slog.String("purpose", purpose.String()),
		slog.Time("expires_at", record.ExpiresAt),
	)

	return &entity.IssuedCode{ID: record.ID, Purpose: purpose, ExpiresAt: record.ExpiresAt}, nil
}

func (srv *otpService) message(code string, purpose entity.OTPPurpose) string {
	action := "registration"
	if purpose == entity.OTPPurposeLogin {
		action = "login"
	}

	return fmt.Sprintf("Your votegate %s code is %s. It expires in %s.", action, code, util.FormatDuration(srv.expiry))
}

// Validate consumes the newest unused code matching phone and code, then applies its transition
// in the same transaction.
func (srv *otpService) Validate(ctx context.Context, input usecase.ValidateOTPInput) (*entity.OTPValidation, error) {
	phone := util.NormalizePhone(input.Phone)
	code := strings.TrimSpace(input.Code)
	if phone == "" || code == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "phone and code are required")
	}
	if input.Purpose != "" && !input.Purpose.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown otp purpose %q", input.Purpose)
	}

	var result *entity.OTPValidation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		otpRepo := repoFactory.NewOTPRepository()
		now := srv.now()

		candidates, err := otpRepo.FindUnusedCodes(ctx, phone, input.Purpose, srv.lookback)
		if err != nil {
			return errors.Wrap(err, "failed to load codes")
		}

		// 1. Newest matching code wins
		var matched *entity.OneTimeCode
		for _, candidate := range candidates {
			if srv.hasher.Check(code, candidate.CodeDigest) {
				matched = candidate

				break
			}
		}
		if matched == nil {
			return errors.Wrap(domainerrors.ErrOTPNotFound, "no matching code")
		}
		if matched.IsExpired(now) {
			return errors.Wrap(domainerrors.ErrOTPExpired, "code expired")
		}

		// 2. Consume it; concurrent validators race on the used=false guard
		if err := otpRepo.MarkCodeUsed(ctx, matched.ID); err != nil {
			if errors.Is(err, repository.ErrOTPAlreadyUsed) {
				return errors.Wrap(domainerrors.ErrOTPNotFound, "code already consumed")
			}

			return errors.Wrap(err, "failed to consume code")
		}

		// 3. Apply the purpose transition
		switch matched.Purpose {
		case entity.OTPPurposeRegistration:
			result, err = srv.confirmPhone(ctx, repoFactory, matched)
		case entity.OTPPurposeLogin:
			result, err = srv.advanceSession(ctx, repoFactory, matched, now)
		default:
			err = errors.Wrapf(domainerrors.ErrInternalError, "stored code has unknown purpose %q", matched.Purpose)
		}

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("One-time code rejected", slog.Any("error", err), slog.String("phone", util.MaskPhone(phone)))

		return nil, errors.Wrap(err, "failed to validate code")
	}

	srv.log(ctx).Info("One-time code validated",
		slog.String("voter_id", result.VoterID.String()),
		slog.String("purpose", result.Purpose.String()),
	)

	return result, nil
}

func (srv *otpService) confirmPhone(ctx context.Context, repoFactory repository.RepositoryFactory, code *entity.OneTimeCode) (*entity.OTPValidation, error) {
	if err := repoFactory.NewVoterRepository().MarkPhoneVerified(ctx, code.VoterID); err != nil {
		if errors.Is(err, repository.ErrVoterNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVoterNotFound, "code owner not found")
		}

		return nil, errors.Wrap(err, "failed to mark phone verified")
	}

	return &entity.OTPValidation{
		VoterID:  code.VoterID,
		Purpose:  entity.OTPPurposeRegistration,
		NextStep: constants.NextStepFaceEnrollment,
	}, nil
}

func (srv *otpService) advanceSession(ctx context.Context, repoFactory repository.RepositoryFactory, code *entity.OneTimeCode, now time.Time) (*entity.OTPValidation, error) {
	sessionRepo := repoFactory.NewAuthSessionRepository()

	session, err := sessionRepo.FindPendingOTPSession(ctx, code.VoterID, now)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionNotFound, "no session awaiting a login code")
		}

		return nil, errors.Wrap(err, "failed to find pending session")
	}

	if err := sessionRepo.CompleteOTPStep(ctx, session.ID, now); err != nil {
		if errors.Is(err, repository.ErrSessionTransitionRejected) {
			return nil, errors.Wrap(domainerrors.ErrSessionStepOutOfOrder, "session cannot accept a login code")
		}

		return nil, errors.Wrap(err, "failed to complete otp step")
	}

	session.Step2Completed = true
	session.UpdatedAt = now

	return &entity.OTPValidation{
		VoterID:  code.VoterID,
		Purpose:  entity.OTPPurposeLogin,
		NextStep: constants.NextStepFaceRecognition,
		Session:  session,
	}, nil
}

// generateNumericCode draws length uniformly random decimal digits.
func generateNumericCode(length int) (string, error) {
	var b strings.Builder
	b.Grow(length)

	ten := big.NewInt(10)
	for range length {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random digit")
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	return b.String(), nil
}
