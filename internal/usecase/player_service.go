package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/matchdayhq/matchday-api/internal/domain/player"
	"github.com/matchdayhq/matchday-api/internal/platform/cache"
	"github.com/matchdayhq/matchday-api/internal/platform/id"
	"github.com/matchdayhq/matchday-api/internal/platform/logging"
)

// PhotoStore persists player photos and returns a public reference.
// Owns reports whether a stored reference was produced by this backend;
// references left behind by another backend must never be deleted.
type PhotoStore interface {
	Upload(ctx context.Context, fileName string, content []byte) (string, error)
	Delete(ctx context.Context, ref string) error
	Owns(ref string) bool
}

var allowedPhotoExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

type PlayerService struct {
	playerRepo player.Repository
	idGen      id.Generator
	photos     PhotoStore
	cache      *cache.Store
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, idGen id.Generator, photos PhotoStore, store *cache.Store) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
		photos:     photos,
		cache:      store,
		now:        time.Now,
	}
}

// SkillsPatch carries partial skill updates; nil fields stay untouched.
type SkillsPatch struct {
	Speed       *int
	Passing     *int
	Attack      *int
	Defense     *int
	Technique   *int
	Goalkeeping *int
	Heading     *int
	Stamina     *int
	Leadership  *int
}

func (p SkillsPatch) apply(s player.Skills) player.Skills {
	if p.Speed != nil {
		s.Speed = *p.Speed
	}
	if p.Passing != nil {
		s.Passing = *p.Passing
	}
	if p.Attack != nil {
		s.Attack = *p.Attack
	}
	if p.Defense != nil {
		s.Defense = *p.Defense
	}
	if p.Technique != nil {
		s.Technique = *p.Technique
	}
	if p.Goalkeeping != nil {
		s.Goalkeeping = *p.Goalkeeping
	}
	if p.Heading != nil {
		s.Heading = *p.Heading
	}
	if p.Stamina != nil {
		s.Stamina = *p.Stamina
	}
	if p.Leadership != nil {
		s.Leadership = *p.Leadership
	}
	return s
}

type CreatePlayerInput struct {
	FullName     string
	Role         string
	PhotoURL     string
	Skills       *SkillsPatch
	GoalsScored  int
	Assists      int
	GoldMedals   int
	SilverMedals int
	BronzeMedals int
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	role, err := player.ParseRole(input.Role)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	skills := player.DefaultSkills()
	if input.Skills != nil {
		skills = input.Skills.apply(skills)
	}

	now := s.now().UTC()
	p := player.Player{
		ID:           playerID,
		FullName:     strings.TrimSpace(input.FullName),
		Role:         role,
		PhotoURL:     strings.TrimSpace(input.PhotoURL),
		Skills:       skills,
		GoalsScored:  input.GoalsScored,
		Assists:      input.Assists,
		GoldMedals:   input.GoldMedals,
		SilverMedals: input.SilverMedals,
		BronzeMedals: input.BronzeMedals,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.invalidateDerivedData(ctx)
	return p, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !found {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return p, nil
}

type ListPlayersInput struct {
	Role  string
	Skip  int
	Limit int
}

func (s *PlayerService) ListPlayers(ctx context.Context, input ListPlayersInput) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	if input.Skip < 0 {
		return nil, fmt.Errorf("%w: skip must not be negative", ErrInvalidInput)
	}
	if input.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	filter := player.ListFilter{Skip: input.Skip, Limit: input.Limit}
	if strings.TrimSpace(input.Role) != "" {
		role, err := player.ParseRole(input.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Role = &role
	}

	players, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

type UpdatePlayerInput struct {
	FullName     *string
	Role         *string
	PhotoURL     *string
	Skills       *SkillsPatch
	GoalsScored  *int
	Assists      *int
	GoldMedals   *int
	SilverMedals *int
	BronzeMedals *int
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, playerID string, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	if input.FullName != nil {
		p.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Role != nil {
		role, err := player.ParseRole(*input.Role)
		if err != nil {
			return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		p.Role = role
	}
	if input.PhotoURL != nil {
		p.PhotoURL = strings.TrimSpace(*input.PhotoURL)
	}
	if input.Skills != nil {
		p.Skills = input.Skills.apply(p.Skills)
	}
	if input.GoalsScored != nil {
		p.GoalsScored = *input.GoalsScored
	}
	if input.Assists != nil {
		p.Assists = *input.Assists
	}
	if input.GoldMedals != nil {
		p.GoldMedals = *input.GoldMedals
	}
	if input.SilverMedals != nil {
		p.SilverMedals = *input.SilverMedals
	}
	if input.BronzeMedals != nil {
		p.BronzeMedals = *input.BronzeMedals
	}

	p.UpdatedAt = s.now().UTC()
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.playerRepo.Update(ctx, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	if !found {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	s.invalidateDerivedData(ctx)
	return p, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	found, err = s.playerRepo.Delete(ctx, playerID)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	s.destroyPhoto(ctx, playerID, p.PhotoURL)
	s.invalidateDerivedData(ctx)
	return nil
}

// UploadPhoto stores a photo and points the player's photo reference at it.
func (s *PlayerService) UploadPhoto(ctx context.Context, playerID, fileName string, content []byte) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UploadPhoto")
	defer span.End()

	if s.photos == nil {
		return player.Player{}, fmt.Errorf("%w: photo storage is not configured", ErrDependencyUnavailable)
	}

	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := allowedPhotoExtensions[ext]; !ok {
		return player.Player{}, fmt.Errorf("%w: unsupported photo extension %q", ErrInvalidInput, ext)
	}
	if len(content) == 0 {
		return player.Player{}, fmt.Errorf("%w: photo content is empty", ErrInvalidInput)
	}

	url, err := s.photos.Upload(ctx, p.ID+ext, content)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: upload photo: %v", ErrDependencyUnavailable, err)
	}

	previous := p.PhotoURL
	p.PhotoURL = url
	p.UpdatedAt = s.now().UTC()
	found, err := s.playerRepo.Update(ctx, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player photo: %w", err)
	}
	if !found {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, p.ID)
	}

	if previous != url {
		s.destroyPhoto(ctx, p.ID, previous)
	}
	s.invalidateDerivedData(ctx)
	return p, nil
}

// destroyPhoto is best effort: a stale blob must not fail the player write.
// References from a different backend (a local URL after switching to
// Cloudinary, or vice versa) are left alone.
func (s *PlayerService) destroyPhoto(ctx context.Context, playerID, ref string) {
	if s.photos == nil || strings.TrimSpace(ref) == "" {
		return
	}
	if !s.photos.Owns(ref) {
		logging.Default().WarnContext(ctx, "skipping photo destroy for foreign ref", "player_id", playerID, "ref", ref)
		return
	}
	if err := s.photos.Delete(ctx, ref); err != nil {
		logging.Default().WarnContext(ctx, "destroy player photo failed", "player_id", playerID, "ref", ref, "error", err)
	}
}

func (s *PlayerService) invalidateDerivedData(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, statisticsCacheKey)
}
