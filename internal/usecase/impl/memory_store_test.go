package impl

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"votegate/internal/domain/entity"
	"votegate/internal/domain/repository"

	"github.com/google/uuid"
)

// memoryState is an in-memory stand-in for the relational store.
type memoryState struct {
	voters     map[uuid.UUID]entity.Voter
	codes      []entity.OneTimeCode
	sessions   map[uuid.UUID]entity.AuthSession
	candidates map[int]entity.Candidate
	votes      map[uuid.UUID]entity.Vote // keyed by voter id, mirroring the unique index
}

func (s *memoryState) clone() *memoryState {
	return &memoryState{
		voters:     maps.Clone(s.voters),
		codes:      slices.Clone(s.codes),
		sessions:   maps.Clone(s.sessions),
		candidates: maps.Clone(s.candidates),
		votes:      maps.Clone(s.votes),
	}
}

// memoryDB serializes transactions and rolls the whole state back when fn fails.
type memoryDB struct {
	mu    sync.Mutex
	state *memoryState
}

func newMemoryDB(candidates ...entity.Candidate) *memoryDB {
	db := &memoryDB{state: &memoryState{
		voters:     map[uuid.UUID]entity.Voter{},
		sessions:   map[uuid.UUID]entity.AuthSession{},
		candidates: map[int]entity.Candidate{},
		votes:      map[uuid.UUID]entity.Vote{},
	}}
	for _, c := range candidates {
		db.state.candidates[c.ID] = c
	}

	return db
}

func (db *memoryDB) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	snapshot := db.state.clone()
	if err := fn(memoryFactory{db: db}); err != nil {
		db.state = snapshot

		return err
	}

	return nil
}

func (db *memoryDB) voter(id uuid.UUID) entity.Voter {
	db.mu.Lock()
	defer db.mu.Unlock()

	return db.state.voters[id]
}

func (db *memoryDB) voteCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()

	return len(db.state.votes)
}

type memoryFactory struct {
	db *memoryDB
}

func (f memoryFactory) NewVoterRepository() repository.VoterRepository {
	return memoryVoterRepo(f)
}

func (f memoryFactory) NewOTPRepository() repository.OTPRepository {
	return memoryOTPRepo(f)
}

func (f memoryFactory) NewAuthSessionRepository() repository.AuthSessionRepository {
	return memorySessionRepo(f)
}

func (f memoryFactory) NewCandidateRepository() repository.CandidateRepository {
	return memoryCandidateRepo(f)
}

func (f memoryFactory) NewVoteRepository() repository.VoteRepository {
	return memoryVoteRepo(f)
}

type memoryVoterRepo struct {
	db *memoryDB
}

func (r memoryVoterRepo) CreateVoter(_ context.Context, voter *entity.Voter) error {
	for _, v := range r.db.state.voters {
		if v.VoterExternalID == voter.VoterExternalID || v.NationalID == voter.NationalID {
			return repository.ErrVoterAlreadyExists
		}
	}
	r.db.state.voters[voter.ID] = *voter

	return nil
}

func (r memoryVoterRepo) FindVoterByID(_ context.Context, id uuid.UUID) (*entity.Voter, error) {
	v, ok := r.db.state.voters[id]
	if !ok {
		return nil, repository.ErrVoterNotFound
	}

	return &v, nil
}

func (r memoryVoterRepo) FindVoterByCredentials(_ context.Context, voterExternalID, nationalID string) (*entity.Voter, error) {
	for _, v := range r.db.state.voters {
		if v.VoterExternalID == voterExternalID && v.NationalID == nationalID {
			return &v, nil
		}
	}

	return nil, repository.ErrVoterNotFound
}

func (r memoryVoterRepo) FindVoterByPhone(_ context.Context, phone string) (*entity.Voter, error) {
	var found *entity.Voter
	for _, v := range r.db.state.voters {
		if v.Phone == phone && (found == nil || v.RegisteredAt.After(found.RegisteredAt)) {
			found = &v
		}
	}
	if found == nil {
		return nil, repository.ErrVoterNotFound
	}

	return found, nil
}

func (r memoryVoterRepo) MarkPhoneVerified(_ context.Context, id uuid.UUID) error {
	v, ok := r.db.state.voters[id]
	if !ok {
		return repository.ErrVoterNotFound
	}
	v.PhoneVerified = true
	r.db.state.voters[id] = v

	return nil
}

func (r memoryVoterRepo) MarkFaceModelTrained(_ context.Context, id uuid.UUID) error {
	return r.flip(id, func(v *entity.Voter) *bool { return &v.FaceModelTrained }, repository.ErrVoterAlreadyTrained)
}

func (r memoryVoterRepo) MarkVoted(_ context.Context, id uuid.UUID) error {
	return r.flip(id, func(v *entity.Voter) *bool { return &v.HasVoted }, repository.ErrVoterAlreadyVoted)
}

func (r memoryVoterRepo) flip(id uuid.UUID, field func(*entity.Voter) *bool, alreadySet error) error {
	v, ok := r.db.state.voters[id]
	if !ok {
		return repository.ErrVoterNotFound
	}
	flag := field(&v)
	if *flag {
		return alreadySet
	}
	*flag = true
	r.db.state.voters[id] = v

	return nil
}

func (r memoryVoterRepo) CountVoters(_ context.Context) (*repository.VoterCounts, error) {
	counts := &repository.VoterCounts{}
	for _, v := range r.db.state.voters {
		counts.Total++
		if v.HasVoted {
			counts.Voted++
		}
		if v.FaceModelTrained {
			counts.Enrolled++
		}
	}

	return counts, nil
}

type memoryOTPRepo struct {
	db *memoryDB
}

func (r memoryOTPRepo) CreateCode(_ context.Context, code *entity.OneTimeCode) error {
	r.db.state.codes = append(r.db.state.codes, *code)

	return nil
}

func (r memoryOTPRepo) FindUnusedCodes(_ context.Context, phone string, purpose entity.OTPPurpose, limit int) ([]*entity.OneTimeCode, error) {
	var codes []*entity.OneTimeCode
	for i := len(r.db.state.codes) - 1; i >= 0 && len(codes) < limit; i-- {
		c := r.db.state.codes[i]
		if c.Phone != phone || c.Used || (purpose != "" && c.Purpose != purpose) {
			continue
		}
		codes = append(codes, &c)
	}

	return codes, nil
}

func (r memoryOTPRepo) MarkCodeUsed(_ context.Context, id uuid.UUID) error {
	for i := range r.db.state.codes {
		if r.db.state.codes[i].ID != id {
			continue
		}
		if r.db.state.codes[i].Used {
			return repository.ErrOTPAlreadyUsed
		}
		r.db.state.codes[i].Used = true

		return nil
	}

	return repository.ErrOTPAlreadyUsed
}

type memorySessionRepo struct {
	db *memoryDB
}

func (r memorySessionRepo) CreateSession(_ context.Context, session *entity.AuthSession) error {
	r.db.state.sessions[session.ID] = *session

	return nil
}

func (r memorySessionRepo) FindSessionByID(_ context.Context, id uuid.UUID) (*entity.AuthSession, error) {
	s, ok := r.db.state.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return &s, nil
}

func (r memorySessionRepo) FindSessionByTokenHash(_ context.Context, tokenHash string) (*entity.AuthSession, error) {
	for _, s := range r.db.state.sessions {
		if s.TokenHash == tokenHash {
			return &s, nil
		}
	}

	return nil, repository.ErrSessionNotFound
}

func (r memorySessionRepo) FindPendingOTPSession(_ context.Context, voterID uuid.UUID, now time.Time) (*entity.AuthSession, error) {
	var pending []entity.AuthSession
	for _, s := range r.db.state.sessions {
		if s.VoterID == voterID && s.Step1Completed && !s.Step2Completed && s.ClosedAt == nil && now.Before(s.ExpiresAt) {
			pending = append(pending, s)
		}
	}
	if len(pending) == 0 {
		return nil, repository.ErrSessionNotFound
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].CreatedAt.After(pending[j].CreatedAt) })

	return &pending[0], nil
}

func (r memorySessionRepo) CompleteOTPStep(_ context.Context, id uuid.UUID, now time.Time) error {
	return r.transition(id, now, func(s *entity.AuthSession) bool {
		if !s.Step1Completed || s.Step2Completed {
			return false
		}
		s.Step2Completed = true

		return true
	})
}

func (r memorySessionRepo) CompleteFaceStep(_ context.Context, id uuid.UUID, now time.Time) error {
	return r.transition(id, now, func(s *entity.AuthSession) bool {
		if !s.Step1Completed || !s.Step2Completed || s.Step3Completed {
			return false
		}
		s.Step3Completed = true

		return true
	})
}

func (r memorySessionRepo) CloseSession(_ context.Context, id uuid.UUID, now time.Time) error {
	s, ok := r.db.state.sessions[id]
	if !ok || s.ClosedAt != nil {
		return repository.ErrSessionTransitionRejected
	}
	closedAt := now
	s.ClosedAt = &closedAt
	s.UpdatedAt = now
	r.db.state.sessions[id] = s

	return nil
}

func (r memorySessionRepo) transition(id uuid.UUID, now time.Time, apply func(*entity.AuthSession) bool) error {
	s, ok := r.db.state.sessions[id]
	if !ok || s.ClosedAt != nil || !now.Before(s.ExpiresAt) || !apply(&s) {
		return repository.ErrSessionTransitionRejected
	}
	s.UpdatedAt = now
	r.db.state.sessions[id] = s

	return nil
}

type memoryCandidateRepo struct {
	db *memoryDB
}

func (r memoryCandidateRepo) ListCandidates(_ context.Context) ([]*entity.Candidate, error) {
	candidates := make([]*entity.Candidate, 0, len(r.db.state.candidates))
	for _, id := range slices.Sorted(maps.Keys(r.db.state.candidates)) {
		c := r.db.state.candidates[id]
		candidates = append(candidates, &c)
	}

	return candidates, nil
}

func (r memoryCandidateRepo) FindCandidateByID(_ context.Context, id int) (*entity.Candidate, error) {
	c, ok := r.db.state.candidates[id]
	if !ok {
		return nil, repository.ErrCandidateNotFound
	}

	return &c, nil
}

func (r memoryCandidateRepo) SeedCandidates(_ context.Context, candidates []*entity.Candidate) (int, error) {
	added := 0
	for _, c := range candidates {
		exists := false
		for _, existing := range r.db.state.candidates {
			if existing.Name == c.Name {
				exists = true

				break
			}
		}
		if exists {
			continue
		}
		id := len(r.db.state.candidates) + 1
		r.db.state.candidates[id] = entity.Candidate{ID: id, Name: c.Name, Party: c.Party, Description: c.Description}
		added++
	}

	return added, nil
}

type memoryVoteRepo struct {
	db *memoryDB
}

func (r memoryVoteRepo) CreateVote(_ context.Context, vote *entity.Vote) error {
	if _, ok := r.db.state.votes[vote.VoterID]; ok {
		return repository.ErrVoteAlreadyExists
	}
	if _, ok := r.db.state.candidates[vote.CandidateID]; !ok {
		return repository.ErrCandidateNotFound
	}
	r.db.state.votes[vote.VoterID] = *vote

	return nil
}

func (r memoryVoteRepo) CountVotes(_ context.Context) (int64, error) {
	return int64(len(r.db.state.votes)), nil
}

func (r memoryVoteRepo) TallyByCandidate(_ context.Context) ([]*entity.CandidateTally, error) {
	tallies := make([]*entity.CandidateTally, 0, len(r.db.state.candidates))
	for _, c := range r.db.state.candidates {
		tally := &entity.CandidateTally{Candidate: c}
		for _, v := range r.db.state.votes {
			if v.CandidateID == c.ID {
				tally.Votes++
			}
		}
		tallies = append(tallies, tally)
	}
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].Votes != tallies[j].Votes {
			return tallies[i].Votes > tallies[j].Votes
		}

		return tallies[i].ID < tallies[j].ID
	})

	return tallies, nil
}

func (r memoryVoteRepo) CountVotesPerHour(_ context.Context, since time.Time) ([]entity.HourlyVotes, error) {
	buckets := map[time.Time]int64{}
	for _, v := range r.db.state.votes {
		if v.CastAt.Before(since) {
			continue
		}
		buckets[v.CastAt.Truncate(time.Hour)]++
	}

	hours := slices.SortedFunc(maps.Keys(buckets), func(a, b time.Time) int { return a.Compare(b) })
	hourly := make([]entity.HourlyVotes, 0, len(hours))
	for _, h := range hours {
		hourly = append(hourly, entity.HourlyVotes{Hour: h, Votes: buckets[h]})
	}

	return hourly, nil
}
