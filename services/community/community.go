// Package community serves the public side of PictoCat: the catalog, the phrase feed,
// likes, user search and public profiles.
package community

import (
	"context"
	"errors"
	"fmt"
	"strings"

	game_constants "pictocat/constants/game"
	"pictocat/models"
	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/friendship"
	"pictocat/services/missions"
	"pictocat/services/redis"
	redis_utils "pictocat/services/redis/utils"
	"pictocat/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db         *gorm.DB
	cache      *redis.RedisClient
	missions   *missions.Service
	friendship *friendship.Service
	log        *zap.Logger
}

func NewService(db *gorm.DB, cache *redis.RedisClient, missions *missions.Service, friendship *friendship.Service, log *zap.Logger) *Service {
	return &Service{
		db:         db,
		cache:      cache,
		missions:   missions,
		friendship: friendship,
		log:        log.Named("community"),
	}
}

// Catalog returns every catalog item ordered by id.
func (s *Service) Catalog(ctx context.Context) ([]postgres.CatalogItem, error) {
	items := []postgres.CatalogItem{}
	if hit, err := s.cache.GetJSON(ctx, redis_utils.CatalogKey, &items); err != nil {
		s.log.Warn("catalog cache read failed", zap.Error(err))
	} else if hit {
		return items, nil
	}

	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if err := s.cache.SetJSON(ctx, redis_utils.CatalogKey, items, game_constants.CATALOG_CACHE_TTL); err != nil {
		s.log.Warn("catalog cache write failed", zap.Error(err))
	}
	return items, nil
}

// Feed returns the newest public phrases with their like information for viewer.
func (s *Service) Feed(ctx context.Context, viewer string, limit int) ([]models.PublicProfilePhrase, error) {
	if limit <= 0 || limit > game_constants.FEED_LIMIT {
		limit = game_constants.FEED_LIMIT
	}
	db := s.db.WithContext(ctx)
	var phrases []postgres.PublicPhrase
	if err := db.Order("created_at DESC").Order("id").Limit(limit).Find(&phrases).Error; err != nil {
		return nil, fmt.Errorf("loading feed: %w", err)
	}
	return withLikes(db, viewer, phrases, true)
}

type likeCount struct {
	PublicPhraseID string
	Count          int
}

// withLikes decorates phrases with their like count and whether viewer liked them.
func withLikes(db *gorm.DB, viewer string, phrases []postgres.PublicPhrase, withAuthor bool) ([]models.PublicProfilePhrase, error) {
	out := make([]models.PublicProfilePhrase, 0, len(phrases))
	if len(phrases) == 0 {
		return out, nil
	}
	ids := make([]string, len(phrases))
	for i, p := range phrases {
		ids[i] = p.ID
	}

	var counts []likeCount
	err := db.Model(&postgres.PhraseLike{}).
		Select("public_phrase_id, COUNT(*) AS count").
		Where("public_phrase_id IN ?", ids).
		Group("public_phrase_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("counting likes: %w", err)
	}
	byPhrase := make(map[string]int, len(counts))
	for _, c := range counts {
		byPhrase[c.PublicPhraseID] = c.Count
	}

	liked := map[string]bool{}
	if viewer != "" {
		var mine []string
		err := db.Model(&postgres.PhraseLike{}).
			Where("player_id = ? AND public_phrase_id IN ?", viewer, ids).
			Pluck("public_phrase_id", &mine).Error
		if err != nil {
			return nil, fmt.Errorf("loading likes: %w", err)
		}
		for _, id := range mine {
			liked[id] = true
		}
	}

	for _, p := range phrases {
		view := models.PublicProfilePhrase{
			PublicPhraseID: p.ID,
			Text:           p.Text,
			ImageURL:       p.ImageURL,
			ImageTheme:     p.ImageTheme,
			LikeCount:      byPhrase[p.ID],
			IsLikedByMe:    liked[p.ID],
			UserID:         p.UserID,
		}
		if withAuthor {
			view.Username = p.Username
			view.IsUserVerified = p.IsUserVerified
		}
		out = append(out, view)
	}
	return out, nil
}

// ToggleLike likes the phrase, or removes viewer's like when present.
func (s *Service) ToggleLike(ctx context.Context, viewer, publicPhraseID string) (*models.LikeResult, error) {
	var (
		result models.LikeResult
		author string
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var phrase postgres.PublicPhrase
		err := tx.Where("id = ?", publicPhraseID).First(&phrase).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "phrase not found")
		}
		if err != nil {
			return fmt.Errorf("loading phrase: %w", err)
		}
		author = phrase.UserID

		res := tx.Where("public_phrase_id = ? AND player_id = ?", phrase.ID, viewer).Delete(&postgres.PhraseLike{})
		if res.Error != nil {
			return fmt.Errorf("removing like: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			if err := tx.Create(&postgres.PhraseLike{PublicPhraseID: phrase.ID, PlayerID: viewer}).Error; err != nil {
				return fmt.Errorf("adding like: %w", err)
			}
			result.Liked = true
		}

		var count int64
		if err := tx.Model(&postgres.PhraseLike{}).Where("public_phrase_id = ?", phrase.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("counting likes: %w", err)
		}
		result.LikeCount = int(count)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Liked && author != viewer {
		s.missions.Record(ctx, viewer, game_constants.MISSION_LIKE_PUBLIC_PHRASE, 1)
		s.friendship.Progress(ctx, viewer, author, game_constants.FRIEND_MISSION_LIKE_PHRASES, 1)
	}
	return &result, nil
}

// PublicProfile renders username's public page as seen by viewer.
func (s *Service) PublicProfile(ctx context.Context, viewer, username string) (*models.PublicProfileData, error) {
	db := s.db.WithContext(ctx)
	player, err := utils.FindPlayerByUsername(db, username)
	if err != nil {
		return nil, err
	}

	var phrases []postgres.PublicPhrase
	if err := db.Where("user_id = ?", player.ID).Order("created_at DESC").Find(&phrases).Error; err != nil {
		return nil, fmt.Errorf("loading public phrases: %w", err)
	}
	views, err := withLikes(db, viewer, phrases, false)
	if err != nil {
		return nil, err
	}

	unlocked, err := utils.UnlockedItemIDs(db, player.ID)
	if err != nil {
		return nil, err
	}
	images, err := utils.CatalogItemsByID(db, unlocked)
	if err != nil {
		return nil, err
	}

	data := &models.PublicProfileData{
		UserID:         player.ID,
		Username:       player.Username,
		Role:           player.Role,
		IsVerified:     player.IsVerified,
		Bio:            player.Bio,
		Phrases:        views,
		UnlockedImages: images,
	}
	if player.AvatarItemID != nil {
		for _, item := range images {
			if item.ID == *player.AvatarItemID {
				data.AvatarURL = item.URL
				break
			}
		}
	}
	return data, nil
}

// Search finds users whose username starts with query, ignoring case.
func (s *Service) Search(ctx context.Context, query string) ([]models.SearchableUser, error) {
	query = strings.TrimSpace(query)
	users := []models.SearchableUser{}
	if len([]rune(query)) < game_constants.SEARCH_MIN_LENGTH {
		return users, nil
	}

	pattern := escapeLike(strings.ToLower(query)) + "%"
	err := s.db.WithContext(ctx).Model(&postgres.Player{}).
		Select("username, is_verified").
		Where(`LOWER(username) LIKE ? ESCAPE '\'`, pattern).
		Order("username").
		Limit(game_constants.SEARCH_LIMIT).
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}
	return users, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
