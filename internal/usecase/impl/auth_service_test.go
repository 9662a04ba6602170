package impl

import (
	"context"
	"testing"
	"time"

	"votegate/config"
	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/domain/repository"
	"votegate/internal/domain/service"
	mockRepo "votegate/internal/mocks/repository"
	mockSvc "votegate/internal/mocks/service"
	mockUsecase "votegate/internal/mocks/usecase"
	"votegate/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	txManager *mockRepo.MockTransactionManager
	otp       *mockUsecase.MockOTPUsecase
	tokens    *mockSvc.MockSessionTokenService
}

func createTestAuthService(t *testing.T) (*authService, *authServiceFixtures) {
	fx := &authServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		otp:       mockUsecase.NewMockOTPUsecase(t),
		tokens:    mockSvc.NewMockSessionTokenService(t),
	}

	srv := NewAuthService(AuthServiceParams{
		TxManager: fx.txManager,
		OTP:       fx.otp,
		Tokens:    fx.tokens,
		Config:    &config.Config{Session: &config.SessionConfig{TTL: 15 * time.Minute}},
		Logger:    discardLogger(),
	}).(*authService)
	srv.now = fixedClock(testNow)

	return srv, fx
}

func TestAuthService_Register_Success(t *testing.T) {
	srv, fx := createTestAuthService(t)
	ctx := context.Background()

	var created *entity.Voter
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		voterRepo := mockRepo.NewMockVoterRepository(t)
		factory.EXPECT().NewVoterRepository().Return(voterRepo)
		voterRepo.EXPECT().CreateVoter(mock.Anything, mock.AnythingOfType("*entity.Voter")).
			RunAndReturn(func(_ context.Context, voter *entity.Voter) error {
				created = voter

				return nil
			})
	})
	issued := &entity.IssuedCode{ID: uuid.New(), Purpose: entity.OTPPurposeRegistration, ExpiresAt: testNow.Add(5 * time.Minute)}
	fx.otp.EXPECT().Issue(mock.Anything, mock.AnythingOfType("uuid.UUID"), "+237600000000", entity.OTPPurposeRegistration).Return(issued, nil)

	out, err := srv.Register(ctx, usecase.RegisterVoterInput{
		VoterExternalID: " V001 ",
		NationalID:      "AAD1",
		Phone:           "+237 600-000-000",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "V001", created.VoterExternalID)
	assert.Equal(t, "+237600000000", created.Phone)
	assert.False(t, created.PhoneVerified)
	assert.False(t, created.HasVoted)
	assert.Equal(t, created, out.Voter)
	assert.Equal(t, issued, out.Code)
}

func TestAuthService_Register_Validation(t *testing.T) {
	srv, _ := createTestAuthService(t)

	_, err := srv.Register(context.Background(), usecase.RegisterVoterInput{NationalID: "AAD1", Phone: "+237600000000"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = srv.Register(context.Background(), usecase.RegisterVoterInput{VoterExternalID: "V001", NationalID: "AAD1", Phone: "12345"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPhone))
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	srv, fx := createTestAuthService(t)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		voterRepo := mockRepo.NewMockVoterRepository(t)
		factory.EXPECT().NewVoterRepository().Return(voterRepo)
		voterRepo.EXPECT().CreateVoter(mock.Anything, mock.Anything).Return(repository.ErrVoterAlreadyExists)
	})

	_, err := srv.Register(context.Background(), usecase.RegisterVoterInput{VoterExternalID: "V001", NationalID: "AAD1", Phone: "+237600000000"})

	assert.True(t, errors.Is(err, domainerrors.ErrVoterAlreadyExists))
}

func TestAuthService_Login_Success(t *testing.T) {
	srv, fx := createTestAuthService(t)
	voter := &entity.Voter{ID: uuid.New(), Phone: "+237600000000", PhoneVerified: true, FaceModelTrained: true}

	var created *entity.AuthSession
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		voterRepo := mockRepo.NewMockVoterRepository(t)
		sessionRepo := mockRepo.NewMockAuthSessionRepository(t)
		factory.EXPECT().NewVoterRepository().Return(voterRepo)
		factory.EXPECT().NewAuthSessionRepository().Return(sessionRepo)

		voterRepo.EXPECT().FindVoterByCredentials(mock.Anything, "V001", "AAD1").Return(voter, nil)
		sessionRepo.EXPECT().CreateSession(mock.Anything, mock.AnythingOfType("*entity.AuthSession")).
			RunAndReturn(func(_ context.Context, session *entity.AuthSession) error {
				created = session

				return nil
			})
	})
	fx.tokens.EXPECT().Issue(voter.ID, mock.AnythingOfType("uuid.UUID"), testNow.Add(15*time.Minute)).Return("signed-token", nil)
	fx.tokens.EXPECT().Hash("signed-token").Return("token-hash")
	fx.otp.EXPECT().Issue(mock.Anything, voter.ID, voter.Phone, entity.OTPPurposeLogin).
		Return(&entity.IssuedCode{ExpiresAt: testNow.Add(5 * time.Minute)}, nil)

	opened, err := srv.Login(context.Background(), usecase.LoginInput{VoterExternalID: "V001", NationalID: "AAD1"})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "signed-token", opened.Token)
	assert.Equal(t, "token-hash", created.TokenHash)
	assert.Equal(t, voter.ID, created.VoterID)
	assert.Equal(t, entity.SessionStateCreated, created.State(testNow))
	assert.Equal(t, testNow.Add(5*time.Minute), opened.CodeExpiresAt)
}

func TestAuthService_Login_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		voter   *entity.Voter
		findErr error
		wantErr error
	}{
		{name: "unknown credentials", findErr: repository.ErrVoterNotFound, wantErr: domainerrors.ErrUnauthorized},
		{name: "already voted", voter: &entity.Voter{ID: uuid.New(), HasVoted: true, FaceModelTrained: true}, wantErr: domainerrors.ErrAlreadyVoted},
		{name: "not enrolled", voter: &entity.Voter{ID: uuid.New(), PhoneVerified: true}, wantErr: domainerrors.ErrFaceModelNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, fx := createTestAuthService(t)
			expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				voterRepo := mockRepo.NewMockVoterRepository(t)
				factory.EXPECT().NewVoterRepository().Return(voterRepo)
				voterRepo.EXPECT().FindVoterByCredentials(mock.Anything, "V001", "AAD1").Return(tt.voter, tt.findErr)
			})

			_, err := srv.Login(context.Background(), usecase.LoginInput{VoterExternalID: "V001", NationalID: "AAD1"})

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	voterID := uuid.New()
	sessionID := uuid.New()
	closedAt := testNow.Add(-time.Minute)
	claims := &service.SessionClaims{SessionID: sessionID, RegisteredClaims: jwt.RegisteredClaims{Subject: voterID.String()}}

	tests := []struct {
		name     string
		parseErr error
		session  *entity.AuthSession
		findErr  error
		wantErr  error
	}{
		{name: "active", session: &entity.AuthSession{ID: sessionID, VoterID: voterID, Step1Completed: true, ExpiresAt: testNow.Add(time.Minute)}},
		{name: "expired token", parseErr: errors.Wrap(jwt.ErrTokenExpired, "parse"), wantErr: domainerrors.ErrSessionExpired},
		{name: "forged token", parseErr: jwt.ErrSignatureInvalid, wantErr: domainerrors.ErrSessionNotFound},
		{name: "unknown hash", findErr: repository.ErrSessionNotFound, wantErr: domainerrors.ErrSessionNotFound},
		{name: "sid mismatch", session: &entity.AuthSession{ID: uuid.New(), ExpiresAt: testNow.Add(time.Minute)}, wantErr: domainerrors.ErrSessionNotFound},
		{name: "closed", session: &entity.AuthSession{ID: sessionID, ExpiresAt: testNow.Add(time.Minute), ClosedAt: &closedAt}, wantErr: domainerrors.ErrSessionExpired},
		{name: "expired", session: &entity.AuthSession{ID: sessionID, ExpiresAt: testNow}, wantErr: domainerrors.ErrSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, fx := createTestAuthService(t)
			if tt.parseErr != nil {
				fx.tokens.EXPECT().Parse("tok").Return(nil, tt.parseErr)
			} else {
				fx.tokens.EXPECT().Parse("tok").Return(claims, nil)
				fx.tokens.EXPECT().Hash("tok").Return("hash")
				expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
					sessionRepo := mockRepo.NewMockAuthSessionRepository(t)
					factory.EXPECT().NewAuthSessionRepository().Return(sessionRepo)
					sessionRepo.EXPECT().FindSessionByTokenHash(mock.Anything, "hash").Return(tt.session, tt.findErr)
				})
			}

			session, err := srv.Authenticate(context.Background(), "tok")

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, sessionID, session.ID)
		})
	}
}

func TestAuthService_Authenticate_EmptyToken(t *testing.T) {
	srv, _ := createTestAuthService(t)

	_, err := srv.Authenticate(context.Background(), "")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_ResendOTP(t *testing.T) {
	voter := &entity.Voter{ID: uuid.New(), Phone: "+237600000000"}
	verified := &entity.Voter{ID: uuid.New(), Phone: "+237600000000", PhoneVerified: true}

	t.Run("registration pending", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			voterRepo := mockRepo.NewMockVoterRepository(t)
			factory.EXPECT().NewVoterRepository().Return(voterRepo)
			voterRepo.EXPECT().FindVoterByPhone(mock.Anything, "+237600000000").Return(voter, nil)
		})
		fx.otp.EXPECT().Issue(mock.Anything, voter.ID, voter.Phone, entity.OTPPurposeRegistration).Return(&entity.IssuedCode{}, nil)

		_, err := srv.ResendOTP(context.Background(), usecase.ResendOTPInput{Phone: "+237600000000", Purpose: entity.OTPPurposeRegistration})

		require.NoError(t, err)
	})

	t.Run("registration already verified", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			voterRepo := mockRepo.NewMockVoterRepository(t)
			factory.EXPECT().NewVoterRepository().Return(voterRepo)
			voterRepo.EXPECT().FindVoterByPhone(mock.Anything, "+237600000000").Return(verified, nil)
		})

		_, err := srv.ResendOTP(context.Background(), usecase.ResendOTPInput{Phone: "+237600000000", Purpose: entity.OTPPurposeRegistration})

		assert.True(t, errors.Is(err, domainerrors.ErrSessionStepOutOfOrder))
	})

	t.Run("login without pending session", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			voterRepo := mockRepo.NewMockVoterRepository(t)
			sessionRepo := mockRepo.NewMockAuthSessionRepository(t)
			factory.EXPECT().NewVoterRepository().Return(voterRepo)
			factory.EXPECT().NewAuthSessionRepository().Return(sessionRepo)
			voterRepo.EXPECT().FindVoterByPhone(mock.Anything, "+237600000000").Return(verified, nil)
			sessionRepo.EXPECT().FindPendingOTPSession(mock.Anything, verified.ID, testNow).Return(nil, repository.ErrSessionNotFound)
		})

		_, err := srv.ResendOTP(context.Background(), usecase.ResendOTPInput{Phone: "+237600000000", Purpose: entity.OTPPurposeLogin})

		assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
	})
}

func TestAuthService_Logout(t *testing.T) {
	session := &entity.AuthSession{ID: uuid.New()}

	srv, fx := createTestAuthService(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		sessionRepo := mockRepo.NewMockAuthSessionRepository(t)
		factory.EXPECT().NewAuthSessionRepository().Return(sessionRepo)
		sessionRepo.EXPECT().CloseSession(mock.Anything, session.ID, testNow).Return(repository.ErrSessionTransitionRejected)
	})

	err := srv.Logout(context.Background(), session)

	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}
