package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"votegate/config"
	deliverycontext "votegate/internal/delivery/context"
	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/domain/repository"
	"votegate/internal/domain/service"
	"votegate/internal/usecase"
	"votegate/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSessionTTL = 30 * time.Minute

// authService implements the AuthUsecase interface.
type authService struct {
	txManager  repository.TransactionManager
	otp        usecase.OTPUsecase
	tokens     service.SessionTokenService
	sessionTTL time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OTP       usecase.OTPUsecase
	Tokens    service.SessionTokenService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	ttl := defaultSessionTTL
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.TTL > 0 {
		ttl = params.Config.Session.TTL
	}

	return &authService{
		txManager:  params.TxManager,
		otp:        params.OTP,
		tokens:     params.Tokens,
		sessionTTL: ttl,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the voter and sends the registration code.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterVoterInput) (*usecase.RegisterOutput, error) {
	externalID := strings.TrimSpace(input.VoterExternalID)
	nationalID := strings.TrimSpace(input.NationalID)
	if externalID == "" || nationalID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "voter id and national id are required")
	}

	phone := util.NormalizePhone(input.Phone)
	if !util.IsValidPhone(phone) {
		return nil, errors.Wrap(domainerrors.ErrInvalidPhone, "phone must be in international format")
	}

	now := srv.now()
	voter := &entity.Voter{
		ID:              uuid.New(),
		VoterExternalID: externalID,
		NationalID:      nationalID,
		Phone:           phone,
		RegisteredAt:    now,
		UpdatedAt:       now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewVoterRepository().CreateVoter(ctx, voter); err != nil {
			if errors.Is(err, repository.ErrVoterAlreadyExists) {
				return errors.Wrap(domainerrors.ErrVoterAlreadyExists, "voter already registered")
			}

			return errors.Wrap(err, "failed to create voter")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Voter registration failed", slog.Any("error", err), slog.String("voter_external_id", externalID))

		return nil, errors.Wrap(err, "failed to register voter")
	}

	code, err := srv.otp.Issue(ctx, voter.ID, voter.Phone, entity.OTPPurposeRegistration)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue registration code")
	}

	srv.log(ctx).Info("Voter registered", slog.String("voter_id", voter.ID.String()))

	return &usecase.RegisterOutput{Voter: voter, Code: code}, nil
}

// VerifyOTP hands the submitted code to the ledger.
func (srv *authService) VerifyOTP(ctx context.Context, input usecase.ValidateOTPInput) (*entity.OTPValidation, error) {
	return srv.otp.Validate(ctx, input)
}

// ResendOTP issues a fresh code when the flow for purpose is still waiting for one.
func (srv *authService) ResendOTP(ctx context.Context, input usecase.ResendOTPInput) (*entity.IssuedCode, error) {
	if !input.Purpose.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown otp purpose %q", input.Purpose)
	}
	phone := util.NormalizePhone(input.Phone)
	if !util.IsValidPhone(phone) {
		return nil, errors.Wrap(domainerrors.ErrInvalidPhone, "phone must be in international format")
	}

	var voter *entity.Voter

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		voter, err = repoFactory.NewVoterRepository().FindVoterByPhone(ctx, phone)
		if err != nil {
			if errors.Is(err, repository.ErrVoterNotFound) {
				return errors.Wrap(domainerrors.ErrVoterNotFound, "no voter with this phone")
			}

			return errors.Wrap(err, "failed to find voter")
		}

		switch input.Purpose {
		case entity.OTPPurposeRegistration:
			if voter.PhoneVerified {
				return errors.Wrap(domainerrors.ErrSessionStepOutOfOrder, "phone already verified")
			}
		case entity.OTPPurposeLogin:
			if _, err := repoFactory.NewAuthSessionRepository().FindPendingOTPSession(ctx, voter.ID, srv.now()); err != nil {
				if errors.Is(err, repository.ErrSessionNotFound) {
					return errors.Wrap(domainerrors.ErrSessionNotFound, "no session awaiting a login code")
				}

				return errors.Wrap(err, "failed to find pending session")
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resend code")
	}

	return srv.otp.Issue(ctx, voter.ID, voter.Phone, input.Purpose)
}

// Login is step 1: the ID pair opens a session and triggers the login code.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*entity.OpenedSession, error) {
	externalID := strings.TrimSpace(input.VoterExternalID)
	nationalID := strings.TrimSpace(input.NationalID)
	if externalID == "" || nationalID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "voter id and national id are required")
	}

	now := srv.now()
	session := &entity.AuthSession{
		ID:             uuid.New(),
		Step1Completed: true,
		ExpiresAt:      now.Add(srv.sessionTTL),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var voter *entity.Voter
	var token string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		voter, err = repoFactory.NewVoterRepository().FindVoterByCredentials(ctx, externalID, nationalID)
		if err != nil {
			if errors.Is(err, repository.ErrVoterNotFound) {
				return errors.Wrap(domainerrors.ErrUnauthorized, "invalid credentials")
			}

			return errors.Wrap(err, "failed to find voter")
		}
		if voter.HasVoted {
			return errors.Wrap(domainerrors.ErrAlreadyVoted, "voter already voted")
		}
		if !voter.FaceModelTrained {
			return errors.Wrap(domainerrors.ErrFaceModelNotFound, "face enrollment not completed")
		}

		session.VoterID = voter.ID
		token, err = srv.tokens.Issue(voter.ID, session.ID, session.ExpiresAt)
		if err != nil {
			return errors.Wrap(err, "failed to sign session token")
		}
		session.TokenHash = srv.tokens.Hash(token)

		return repoFactory.NewAuthSessionRepository().CreateSession(ctx, session)
	})
	if err != nil {
		srv.log(ctx).Warn("Login rejected", slog.Any("error", err), slog.String("voter_external_id", externalID))

		return nil, errors.Wrap(err, "failed to login")
	}

	code, err := srv.otp.Issue(ctx, voter.ID, voter.Phone, entity.OTPPurposeLogin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue login code")
	}

	srv.log(ctx).Info("Authentication session opened",
		slog.String("voter_id", voter.ID.String()),
		slog.String("session_id", session.ID.String()),
	)

	return &entity.OpenedSession{Session: session, Token: token, CodeExpiresAt: code.ExpiresAt}, nil
}

// Authenticate resolves a bearer token. Only the token hash is looked up.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.AuthSession, error) {
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "missing session token")
	}

	claims, err := srv.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrSessionExpired, "session token expired")
		}

		return nil, errors.Wrap(domainerrors.ErrSessionNotFound, "invalid session token")
	}

	var session *entity.AuthSession

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		session, err = repoFactory.NewAuthSessionRepository().FindSessionByTokenHash(ctx, srv.tokens.Hash(token))
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrSessionNotFound, "unknown session token")
			}

			return errors.Wrap(err, "failed to find session")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if session.ID != claims.SessionID {
		return nil, errors.Wrap(domainerrors.ErrSessionNotFound, "token does not belong to session")
	}

	switch session.State(srv.now()) {
	case entity.SessionStateClosed:
		return nil, errors.Wrap(domainerrors.ErrSessionExpired, "session closed")
	case entity.SessionStateExpired:
		return nil, errors.Wrap(domainerrors.ErrSessionExpired, "session expired")
	}

	return session, nil
}

// Status reports where the session stands in the flow.
func (srv *authService) Status(ctx context.Context, session *entity.AuthSession) (*entity.SessionStatus, error) {
	var voter *entity.Voter

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		voter, err = repoFactory.NewVoterRepository().FindVoterByID(ctx, session.VoterID)
		if err != nil {
			if errors.Is(err, repository.ErrVoterNotFound) {
				return errors.Wrap(domainerrors.ErrVoterNotFound, "session voter not found")
			}

			return errors.Wrap(err, "failed to find voter")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session status")
	}

	return &entity.SessionStatus{
		State:     session.State(srv.now()),
		Steps:     session.Steps(),
		Voter:     voter,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout closes the session so its token stops working.
func (srv *authService) Logout(ctx context.Context, session *entity.AuthSession) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAuthSessionRepository().CloseSession(ctx, session.ID, srv.now()); err != nil {
			if errors.Is(err, repository.ErrSessionTransitionRejected) {
				return errors.Wrap(domainerrors.ErrSessionExpired, "session already closed or expired")
			}

			return errors.Wrap(err, "failed to close session")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to logout")
	}

	srv.log(ctx).Info("Authentication session closed", slog.String("session_id", session.ID.String()))

	return nil
}
