// Package trading implements item trades between players.
package trading

import (
	"context"
	"errors"
	"fmt"

	game_constants "pictocat/constants/game"
	"pictocat/models"
	"pictocat/models/postgres"
	"pictocat/services/apperr"
	"pictocat/services/friendship"
	"pictocat/services/settings"
	socketio_types "pictocat/services/socket_io/types"
	"pictocat/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	db         *gorm.DB
	settings   *settings.Service
	friendship *friendship.Service
	notifier   socketio_types.Notifier
	log        *zap.Logger
}

func NewService(db *gorm.DB, settings *settings.Service, friendship *friendship.Service, notifier socketio_types.Notifier, log *zap.Logger) *Service {
	return &Service{
		db:         db,
		settings:   settings,
		friendship: friendship,
		notifier:   socketio_types.OrNop(notifier),
		log:        log.Named("trading"),
	}
}

// ValidateItems deduplicates both lists and checks they are non-empty in total and disjoint.
func ValidateItems(offered, requested []int) ([]int, []int, error) {
	offered = utils.Dedupe(offered)
	requested = utils.Dedupe(requested)
	if len(offered)+len(requested) == 0 {
		return nil, nil, apperr.New(apperr.InvalidItems, "a trade needs at least one item")
	}
	inOffer := make(map[int]bool, len(offered))
	for _, id := range offered {
		inOffer[id] = true
	}
	for _, id := range requested {
		if inOffer[id] {
			return nil, nil, apperr.New(apperr.InvalidItems, "an item cannot be both offered and requested")
		}
	}
	return offered, requested, nil
}

// Create proposes a trade from from to to.
func (s *Service) Create(ctx context.Context, from, to string, offered, requested []int) (*postgres.Trade, error) {
	if to == "" || to == from {
		return nil, apperr.New(apperr.InvalidInput, "invalid trade target")
	}
	offered, requested, err := ValidateItems(offered, requested)
	if err != nil {
		return nil, err
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	var trade postgres.Trade
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		players, err := utils.LockPlayers(tx, from, to)
		if err != nil {
			return err
		}

		if cfg.TradeRequiresFriendship {
			ok, err := canTrade(tx, players[from], to)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.New(apperr.NotFriends, "can only trade with friends")
			}
		}

		ok, err := exchangeable(tx, from, to, offered, requested)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.New(apperr.InvalidItems, "invalid trade items")
		}

		trade = postgres.Trade{
			FromUserID:       from,
			ToUserID:         to,
			OfferedItemIDs:   postgres.MustEncodeJSON(offered),
			RequestedItemIDs: postgres.MustEncodeJSON(requested),
			Status:           game_constants.TRADE_PENDING,
		}
		if err := tx.Create(&trade).Error; err != nil {
			return fmt.Errorf("creating trade: %w", err)
		}
		return tx.Model(players[to]).Update("trade_notifications", gorm.Expr("trade_notifications + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("trade created", zap.String("trade", trade.ID), zap.String("from", from), zap.String("to", to))
	s.friendship.Progress(ctx, from, to, game_constants.FRIEND_MISSION_SEND_TRADE, 1)
	s.notifier.Notify(to, socketio_types.EventTradeReceived, map[string]string{"tradeId": trade.ID, "fromUserId": from})
	return &trade, nil
}

// canTrade accepts a friendship row or, for profiles not migrated yet, the legacy friend list.
func canTrade(tx *gorm.DB, from *postgres.Player, to string) (bool, error) {
	friends, err := utils.AreFriends(tx, from.ID, to)
	if err != nil || friends {
		return friends, err
	}
	legacy, err := from.GetLegacyFriends()
	if err != nil {
		return false, fmt.Errorf("decoding legacy friends of %s: %w", from.ID, err)
	}
	for _, id := range legacy {
		if id == to {
			return true, nil
		}
	}
	return false, nil
}

// exchangeable reports whether each side owns what it gives and lacks what it receives.
// An item the receiver already has would be lost by the swap.
func exchangeable(tx *gorm.DB, from, to string, offered, requested []int) (bool, error) {
	checks := []struct {
		player string
		items  []int
		owned  bool
	}{
		{from, offered, true},
		{to, requested, true},
		{from, requested, false},
		{to, offered, false},
	}
	for _, c := range checks {
		var (
			ok  bool
			err error
		)
		if c.owned {
			ok, err = utils.OwnsAll(tx, c.player, c.items)
		} else {
			ok, err = utils.OwnsAny(tx, c.player, c.items)
			ok = !ok
		}
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// Respond lets the recipient accept or reject a pending trade. Accepting swaps the items
// atomically; when either side no longer owns an item the trade is rejected and Conflict returned.
func (s *Service) Respond(ctx context.Context, subject, tradeID string, accept bool) (*postgres.Trade, error) {
	var trade postgres.Trade
	stale := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := utils.ForUpdate(tx).
			Where("id = ? AND to_user_id = ? AND status = ?", tradeID, subject, game_constants.TRADE_PENDING).
			First(&trade).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "trade not found or not actionable")
		}
		if err != nil {
			return fmt.Errorf("loading trade: %w", err)
		}

		if !accept {
			trade.Status = game_constants.TRADE_REJECTED
			return tx.Model(&trade).Update("status", trade.Status).Error
		}

		players, err := utils.LockPlayers(tx, trade.FromUserID, trade.ToUserID)
		if err != nil {
			return err
		}
		offered, err := trade.Offered()
		if err != nil {
			return fmt.Errorf("decoding offered items: %w", err)
		}
		requested, err := trade.Requested()
		if err != nil {
			return fmt.Errorf("decoding requested items: %w", err)
		}

		ok, err := exchangeable(tx, trade.FromUserID, trade.ToUserID, offered, requested)
		if err != nil {
			return err
		}
		if !ok {
			stale = true
			trade.Status = game_constants.TRADE_REJECTED
			trade.Reason = game_constants.TRADE_REASON_STALE
			return tx.Model(&trade).Updates(map[string]interface{}{"status": trade.Status, "reason": trade.Reason}).Error
		}

		if err := move(tx, trade.FromUserID, trade.ToUserID, offered); err != nil {
			return err
		}
		if err := move(tx, trade.ToUserID, trade.FromUserID, requested); err != nil {
			return err
		}
		if err := clearTradedAvatar(tx, players[trade.FromUserID], offered); err != nil {
			return err
		}
		if err := clearTradedAvatar(tx, players[trade.ToUserID], requested); err != nil {
			return err
		}

		trade.Status = game_constants.TRADE_ACCEPTED
		return tx.Model(&trade).Update("status", trade.Status).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("trade resolved", zap.String("trade", trade.ID), zap.String("status", trade.Status))
	s.notifier.Notify(trade.FromUserID, socketio_types.EventTradeUpdated, map[string]string{"tradeId": trade.ID, "status": trade.Status})
	if stale {
		return &trade, apperr.New(apperr.Conflict, "trade failed, one or more items no longer available")
	}
	return &trade, nil
}

// move transfers items from one unlocked set to the other.
func move(tx *gorm.DB, from, to string, items []int) error {
	if len(items) == 0 {
		return nil
	}
	if err := tx.Where("player_id = ? AND item_id IN ?", from, items).Delete(&postgres.UnlockedItem{}).Error; err != nil {
		return fmt.Errorf("removing traded items: %w", err)
	}
	rows := make([]postgres.UnlockedItem, 0, len(items))
	for _, id := range items {
		rows = append(rows, postgres.UnlockedItem{PlayerID: to, ItemID: id})
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("granting traded items: %w", err)
	}
	return nil
}

func clearTradedAvatar(tx *gorm.DB, player *postgres.Player, given []int) error {
	if player.AvatarItemID == nil {
		return nil
	}
	for _, id := range given {
		if id == *player.AvatarItemID {
			player.AvatarItemID = nil
			return tx.Model(player).Update("avatar_item_id", nil).Error
		}
	}
	return nil
}

// Cancel withdraws a pending trade. Only its proposer may cancel it.
func (s *Service) Cancel(ctx context.Context, subject, tradeID string) error {
	res := s.db.WithContext(ctx).Model(&postgres.Trade{}).
		Where("id = ? AND from_user_id = ? AND status = ?", tradeID, subject, game_constants.TRADE_PENDING).
		Update("status", game_constants.TRADE_CANCELLED)
	if res.Error != nil {
		return fmt.Errorf("cancelling trade: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "trade not found or not cancellable")
	}
	return nil
}

// ListPending returns the pending trades involving subject, newest first, and resets
// the caller's unseen trade counter.
func (s *Service) ListPending(ctx context.Context, subject string) ([]models.TradeOffer, error) {
	db := s.db.WithContext(ctx)
	var trades []postgres.Trade
	err := db.Where("(from_user_id = ? OR to_user_id = ?) AND status = ?", subject, subject, game_constants.TRADE_PENDING).
		Order("created_at DESC").
		Find(&trades).Error
	if err != nil {
		return nil, fmt.Errorf("loading trades: %w", err)
	}

	offers, err := s.render(db, trades)
	if err != nil {
		return nil, err
	}
	if err := db.Model(&postgres.Player{}).Where("id = ?", subject).Update("trade_notifications", 0).Error; err != nil {
		return nil, fmt.Errorf("resetting trade notifications: %w", err)
	}
	return offers, nil
}

// render resolves both parties and item records of each trade.
func (s *Service) render(db *gorm.DB, trades []postgres.Trade) ([]models.TradeOffer, error) {
	offers := make([]models.TradeOffer, 0, len(trades))
	if len(trades) == 0 {
		return offers, nil
	}

	playerIDs := make([]string, 0, 2*len(trades))
	offered := make([][]int, len(trades))
	requested := make([][]int, len(trades))
	var itemIDs []int
	for i := range trades {
		var err error
		playerIDs = append(playerIDs, trades[i].FromUserID, trades[i].ToUserID)
		if offered[i], err = trades[i].Offered(); err != nil {
			return nil, fmt.Errorf("decoding offered items of trade %s: %w", trades[i].ID, err)
		}
		if requested[i], err = trades[i].Requested(); err != nil {
			return nil, fmt.Errorf("decoding requested items of trade %s: %w", trades[i].ID, err)
		}
		itemIDs = append(itemIDs, offered[i]...)
		itemIDs = append(itemIDs, requested[i]...)
	}

	var players []postgres.Player
	if err := db.Where("id IN ?", playerIDs).Find(&players).Error; err != nil {
		return nil, fmt.Errorf("loading trade parties: %w", err)
	}
	byPlayer := make(map[string]postgres.Player, len(players))
	for _, p := range players {
		if p.AvatarItemID != nil {
			itemIDs = append(itemIDs, *p.AvatarItemID)
		}
		byPlayer[p.ID] = p
	}

	items, err := utils.CatalogItemsByID(db, utils.Dedupe(itemIDs))
	if err != nil {
		return nil, err
	}
	byItem := make(map[int]postgres.CatalogItem, len(items))
	for _, item := range items {
		byItem[item.ID] = item
	}
	resolve := func(ids []int) []postgres.CatalogItem {
		out := make([]postgres.CatalogItem, 0, len(ids))
		for _, id := range ids {
			if item, ok := byItem[id]; ok {
				out = append(out, item)
			}
		}
		return out
	}
	avatar := func(p postgres.Player) string {
		if p.AvatarItemID == nil {
			return ""
		}
		return byItem[*p.AvatarItemID].URL
	}

	for i := range trades {
		t := &trades[i]
		from, to := byPlayer[t.FromUserID], byPlayer[t.ToUserID]
		offers = append(offers, models.TradeOffer{
			ID:               t.ID,
			FromUserID:       t.FromUserID,
			FromUsername:     from.Username,
			FromUserVerified: from.IsVerified,
			FromAvatarURL:    avatar(from),
			ToUserID:         t.ToUserID,
			ToUsername:       to.Username,
			ToUserVerified:   to.IsVerified,
			ToAvatarURL:      avatar(to),
			OfferedImages:    resolve(offered[i]),
			RequestedImages:  resolve(requested[i]),
			Status:           t.Status,
			Reason:           t.Reason,
			CreatedAt:        t.CreatedAt,
		})
	}
	return offers, nil
}

// ListByStatus is the admin view of trades; an empty status lists every trade.
func (s *Service) ListByStatus(ctx context.Context, status string) ([]models.TradeOffer, error) {
	db := s.db.WithContext(ctx)
	query := db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var trades []postgres.Trade
	if err := query.Find(&trades).Error; err != nil {
		return nil, fmt.Errorf("loading trades: %w", err)
	}
	return s.render(db, trades)
}

// ForceCancel cancels any pending trade regardless of its parties.
func (s *Service) ForceCancel(ctx context.Context, tradeID string) error {
	res := s.db.WithContext(ctx).Model(&postgres.Trade{}).
		Where("id = ? AND status = ?", tradeID, game_constants.TRADE_PENDING).
		Updates(map[string]interface{}{"status": game_constants.TRADE_CANCELLED, "reason": "cancelled by an administrator"})
	if res.Error != nil {
		return fmt.Errorf("cancelling trade: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "trade not found or not pending")
	}
	return nil
}
