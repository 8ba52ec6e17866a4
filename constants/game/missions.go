package game_constants

// DailyMissionTemplate is drawn into a player's daily mission list on rollover.
type DailyMissionTemplate struct {
	ID          string
	Description string
	Type        string
	Goal        int
	RewardCoins int
	RewardXP    int
}

var DAILY_MISSIONS = []DailyMissionTemplate{
	{ID: "play_1_game", Description: "Juega 1 partida en cualquier modo", Type: MISSION_PLAY_ANY_GAME, Goal: 1, RewardCoins: 50, RewardXP: 25},
	{ID: "play_3_games", Description: "Juega 3 partidas en cualquier modo", Type: MISSION_PLAY_ANY_GAME, Goal: 3, RewardCoins: 150, RewardXP: 75},
	{ID: "open_1_envelope", Description: "Abre 1 sobre de la tienda", Type: MISSION_OPEN_ENVELOPE, Goal: 1, RewardCoins: 100, RewardXP: 50},
	{ID: "like_1_phrase", Description: "Dale 'me gusta' a una frase pública", Type: MISSION_LIKE_PUBLIC_PHRASE, Goal: 1, RewardCoins: 30, RewardXP: 15},
	{ID: "like_3_phrases", Description: "Dale 'me gusta' a 3 frases públicas", Type: MISSION_LIKE_PUBLIC_PHRASE, Goal: 3, RewardCoins: 100, RewardXP: 40},
	{ID: "chat_with_picto", Description: "Habla con el gato asistente Picto", Type: MISSION_CHAT_WITH_PICTO, Goal: 1, RewardCoins: 75, RewardXP: 30},
}

// FriendshipMissionTemplate is a mission two friends complete together for friendship xp.
type FriendshipMissionTemplate struct {
	ID          string
	Title       string
	Description string
	Type        string
	Goal        int
	RewardXP    int
}

var FRIENDSHIP_MISSIONS = []FriendshipMissionTemplate{
	{ID: "play_5_games", Title: "Compañeros de Juego", Description: "Juega 5 partidas en cualquier modo de juego (cada uno).", Type: FRIEND_MISSION_PLAY_GAMES, Goal: 5, RewardXP: 100},
	{ID: "play_15_games", Title: "Dúo Dinámico", Description: "Juega 15 partidas en cualquier modo de juego (cada uno).", Type: FRIEND_MISSION_PLAY_GAMES, Goal: 15, RewardXP: 250},
	{ID: "like_5_phrases", Title: "Apoyo Mutuo", Description: "Dale 'me gusta' a 5 frases públicas de tu amigo.", Type: FRIEND_MISSION_LIKE_PHRASES, Goal: 5, RewardXP: 75},
	{ID: "like_10_phrases", Title: "Club de Fans", Description: "Dale 'me gusta' a 10 frases públicas de tu amigo.", Type: FRIEND_MISSION_LIKE_PHRASES, Goal: 10, RewardXP: 150},
	{ID: "send_1_trade", Title: "Primer Intercambio", Description: "Envía una oferta de intercambio a tu amigo (no necesita ser aceptada).", Type: FRIEND_MISSION_SEND_TRADE, Goal: 1, RewardXP: 50},
	{ID: "send_3_trades", Title: "Comerciantes", Description: "Envía 3 ofertas de intercambio a tu amigo.", Type: FRIEND_MISSION_SEND_TRADE, Goal: 3, RewardXP: 120},
}

func FindFriendshipMission(id string) (FriendshipMissionTemplate, bool) {
	for _, m := range FRIENDSHIP_MISSIONS {
		if m.ID == id {
			return m, true
		}
	}
	return FriendshipMissionTemplate{}, false
}

// DEFAULT_PHRASES seed every new profile.
var DEFAULT_PHRASES = []struct {
	ID   string
	Text string
}{
	{"yes", "Sí"},
	{"no", "No"},
	{"happy", "Me siento feliz"},
	{"sad", "Me siento triste"},
	{"help", "Necesito ayuda"},
}
