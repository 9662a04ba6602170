package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"votegate/config"
	"votegate/internal/domain/constants"
	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/domain/repository"
	mockRepo "votegate/internal/mocks/repository"
	mockSvc "votegate/internal/mocks/service"
	"votegate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type otpServiceFixtures struct {
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockCodeHasher
	sms       *mockSvc.MockSMSSender
}

func createTestOTPService(t *testing.T) (*otpService, *otpServiceFixtures) {
	fx := &otpServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		hasher:    mockSvc.NewMockCodeHasher(t),
		sms:       mockSvc.NewMockSMSSender(t),
	}

	srv := NewOTPService(OTPServiceParams{
		TxManager: fx.txManager,
		Hasher:    fx.hasher,
		SMS:       fx.sms,
		Config:    &config.Config{OTP: &config.OTPConfig{Length: 6, Expiry: 5 * time.Minute, Lookback: 3}},
		Logger:    discardLogger(),
	}).(*otpService)
	srv.now = fixedClock(testNow)

	return srv, fx
}

func TestOTPService_Issue_Success(t *testing.T) {
	srv, fx := createTestOTPService(t)
	ctx := context.Background()
	voterID := uuid.New()

	var sentCode string
	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).RunAndReturn(func(code string) (string, error) {
		sentCode = code

		return "digest:" + code, nil
	})

	var stored *entity.OneTimeCode
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		otpRepo := mockRepo.NewMockOTPRepository(t)
		factory.EXPECT().NewOTPRepository().Return(otpRepo)
		otpRepo.EXPECT().CreateCode(mock.Anything, mock.AnythingOfType("*entity.OneTimeCode")).
			RunAndReturn(func(_ context.Context, code *entity.OneTimeCode) error {
				stored = code

				return nil
			})
	})

	fx.sms.EXPECT().Send(mock.Anything, "+237600000000", mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _ string, message string) error {
			assert.Contains(t, message, sentCode)
			assert.Contains(t, message, "registration")

			return nil
		})

	issued, err := srv.Issue(ctx, voterID, "+237600000000", entity.OTPPurposeRegistration)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, sentCode, 6)
	assert.Equal(t, "digest:"+sentCode, stored.CodeDigest)
	assert.Equal(t, voterID, stored.VoterID)
	assert.False(t, stored.Used)
	assert.Equal(t, testNow.Add(5*time.Minute), issued.ExpiresAt)
	assert.Equal(t, stored.ID, issued.ID)
}

func TestOTPService_Issue_SMSFailureStillIssues(t *testing.T) {
	srv, fx := createTestOTPService(t)

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("digest", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		otpRepo := mockRepo.NewMockOTPRepository(t)
		factory.EXPECT().NewOTPRepository().Return(otpRepo)
		otpRepo.EXPECT().CreateCode(mock.Anything, mock.Anything).Return(nil)
	})
	fx.sms.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("gateway down"))

	issued, err := srv.Issue(context.Background(), uuid.New(), "+237600000000", entity.OTPPurposeLogin)

	require.NoError(t, err)
	assert.Equal(t, entity.OTPPurposeLogin, issued.Purpose)
}

func TestOTPService_Issue_UnknownPurpose(t *testing.T) {
	srv, _ := createTestOTPService(t)

	_, err := srv.Issue(context.Background(), uuid.New(), "+237600000000", entity.OTPPurpose("reset"))

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOTPService_Issue_StoreFailure(t *testing.T) {
	srv, fx := createTestOTPService(t)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("digest", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		otpRepo := mockRepo.NewMockOTPRepository(t)
		factory.EXPECT().NewOTPRepository().Return(otpRepo)
		otpRepo.EXPECT().CreateCode(mock.Anything, mock.Anything).Return(errors.New("connection reset"))
	})

	_, err := srv.Issue(context.Background(), uuid.New(), "+237600000000", entity.OTPPurposeRegistration)

	assert.ErrorContains(t, err, "connection reset")
}

func TestOTPService_Validate_Registration(t *testing.T) {
	srv, fx := createTestOTPService(t)
	voterID := uuid.New()
	stale := &entity.OneTimeCode{ID: uuid.New(), VoterID: voterID, CodeDigest: "d-old", Purpose: entity.OTPPurposeRegistration, ExpiresAt: testNow.Add(time.Minute)}
	fresh := &entity.OneTimeCode{ID: uuid.New(), VoterID: voterID, CodeDigest: "d-new", Purpose: entity.OTPPurposeRegistration, ExpiresAt: testNow.Add(time.Minute)}

	fx.hasher.EXPECT().Check("123456", "d-new").Return(false)
	fx.hasher.EXPECT().Check("123456", "d-old").Return(true)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		otpRepo := mockRepo.NewMockOTPRepository(t)
		voterRepo := mockRepo.NewMockVoterRepository(t)
		factory.EXPECT().NewOTPRepository().Return(otpRepo)
		factory.EXPECT().NewVoterRepository().Return(voterRepo)

		otpRepo.EXPECT().FindUnusedCodes(mock.Anything, "+237600000000", entity.OTPPurposeRegistration, 3).
			Return([]*entity.OneTimeCode{fresh, stale}, nil)
		otpRepo.EXPECT().MarkCodeUsed(mock.Anything, stale.ID).Return(nil)
		voterRepo.EXPECT().MarkPhoneVerified(mock.Anything, voterID).Return(nil)
	})

	result, err := srv.Validate(context.Background(), usecase.ValidateOTPInput{
		Phone:   "+237 600 000 000",
		Code:    " 123456 ",
		Purpose: entity.OTPPurposeRegistration,
	})

	require.NoError(t, err)
	assert.Equal(t, voterID, result.VoterID)
	assert.Equal(t, constants.NextStepFaceEnrollment, result.NextStep)
	assert.Nil(t, result.Session)
}

func TestOTPService_Validate_Rejections(t *testing.T) {
	expired := &entity.OneTimeCode{ID: uuid.New(), CodeDigest: "d", Purpose: entity.OTPPurposeLogin, ExpiresAt: testNow}
	live := &entity.OneTimeCode{ID: uuid.New(), CodeDigest: "d", Purpose: entity.OTPPurposeLogin, ExpiresAt: testNow.Add(time.Minute)}

	tests := []struct {
		name    string
		codes   []*entity.OneTimeCode
		matches bool
		markErr error
		wantErr error
	}{
		{name: "no unused codes", wantErr: domainerrors.ErrOTPNotFound},
		{name: "wrong code", codes: []*entity.OneTimeCode{live}, wantErr: domainerrors.ErrOTPNotFound},
		{name: "expired at boundary", codes: []*entity.OneTimeCode{expired}, matches: true, wantErr: domainerrors.ErrOTPExpired},
		{name: "consumed concurrently", codes: []*entity.OneTimeCode{live}, matches: true, markErr: repository.ErrOTPAlreadyUsed, wantErr: domainerrors.ErrOTPNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, fx := createTestOTPService(t)
			if len(tt.codes) > 0 {
				fx.hasher.EXPECT().Check("000000", "d").Return(tt.matches)
			}

			expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				otpRepo := mockRepo.NewMockOTPRepository(t)
				factory.EXPECT().NewOTPRepository().Return(otpRepo)
				otpRepo.EXPECT().FindUnusedCodes(mock.Anything, "+237600000000", entity.OTPPurposeLogin, 3).Return(tt.codes, nil)
				if tt.markErr != nil {
					otpRepo.EXPECT().MarkCodeUsed(mock.Anything, live.ID).Return(tt.markErr)
				}
			})

			_, err := srv.Validate(context.Background(), usecase.ValidateOTPInput{
				Phone:   "+237600000000",
				Code:    "000000",
				Purpose: entity.OTPPurposeLogin,
			})

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestOTPService_Validate_LoginAdvancesSession(t *testing.T) {
	srv, fx := createTestOTPService(t)
	voterID := uuid.New()
	code := &entity.OneTimeCode{ID: uuid.New(), VoterID: voterID, CodeDigest: "d", Purpose: entity.OTPPurposeLogin, ExpiresAt: testNow.Add(time.Minute)}
	session := &entity.AuthSession{ID: uuid.New(), VoterID: voterID, Step1Completed: true, ExpiresAt: testNow.Add(time.Hour)}

	fx.hasher.EXPECT().Check("654321", "d").Return(true)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		otpRepo := mockRepo.NewMockOTPRepository(t)
		sessionRepo := mockRepo.NewMockAuthSessionRepository(t)
		factory.EXPECT().NewOTPRepository().Return(otpRepo)
		factory.EXPECT().NewAuthSessionRepository().Return(sessionRepo)

		otpRepo.EXPECT().FindUnusedCodes(mock.Anything, "+237600000000", entity.OTPPurpose(""), 3).Return([]*entity.OneTimeCode{code}, nil)
		otpRepo.EXPECT().MarkCodeUsed(mock.Anything, code.ID).Return(nil)
		sessionRepo.EXPECT().FindPendingOTPSession(mock.Anything, voterID, testNow).Return(session, nil)
		sessionRepo.EXPECT().CompleteOTPStep(mock.Anything, session.ID, testNow).Return(nil)
	})

	result, err := srv.Validate(context.Background(), usecase.ValidateOTPInput{Phone: "+237600000000", Code: "654321"})

	require.NoError(t, err)
	assert.Equal(t, constants.NextStepFaceRecognition, result.NextStep)
	require.NotNil(t, result.Session)
	assert.Equal(t, entity.SessionStateOTPVerified, result.Session.State(testNow))
}

func TestOTPService_Validate_LoginWithoutPendingSession(t *testing.T) {
	srv, fx := createTestOTPService(t)
	code := &entity.OneTimeCode{ID: uuid.New(), VoterID: uuid.New(), CodeDigest: "d", Purpose: entity.OTPPurposeLogin, ExpiresAt: testNow.Add(time.Minute)}

	fx.hasher.EXPECT().Check("654321", "d").Return(true)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		otpRepo := mockRepo.NewMockOTPRepository(t)
		sessionRepo := mockRepo.NewMockAuthSessionRepository(t)
		factory.EXPECT().NewOTPRepository().Return(otpRepo)
		factory.EXPECT().NewAuthSessionRepository().Return(sessionRepo)

		otpRepo.EXPECT().FindUnusedCodes(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]*entity.OneTimeCode{code}, nil)
		otpRepo.EXPECT().MarkCodeUsed(mock.Anything, code.ID).Return(nil)
		sessionRepo.EXPECT().FindPendingOTPSession(mock.Anything, code.VoterID, testNow).Return(nil, repository.ErrSessionNotFound)
	})

	_, err := srv.Validate(context.Background(), usecase.ValidateOTPInput{Phone: "+237600000000", Code: "654321", Purpose: entity.OTPPurposeLogin})

	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestOTPService_Validate_RequiresInput(t *testing.T) {
	srv, _ := createTestOTPService(t)

	_, err := srv.Validate(context.Background(), usecase.ValidateOTPInput{Phone: "+237600000000"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = srv.Validate(context.Background(), usecase.ValidateOTPInput{Phone: "+237600000000", Code: "1", Purpose: "reset"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestGenerateNumericCode(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		code, err := generateNumericCode(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
		assert.Empty(t, strings.Trim(code, "0123456789"))
	}
}
