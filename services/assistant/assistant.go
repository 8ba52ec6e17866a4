// Package assistant answers chat messages as Picto, the in-game cat assistant.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	game_constants "pictocat/constants/game"
	"pictocat/models"
	"pictocat/services/apperr"
	"pictocat/services/missions"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const SystemInstruction = "You are Picto, a helpful and slightly quirky cat assistant for a game called PictoCat. " +
	"Your personality is friendly, curious, and you love cat puns. Keep your answers concise and fun. " +
	"You are talking to a player of the game. You can give tips, tell jokes, or just chat. " +
	"The game involves collecting cat pictures, assigning them to phrases, and playing minigames."

// Fallback is returned whenever the model cannot be reached.
const Fallback = "¡Miau! Ahora mismo no puedo pensar con claridad. Inténtalo de nuevo en un ratito."

// Only the latest messages are sent upstream.
const maxHistory = 20

var errNoClient = errors.New("assistant not configured")

// Generator produces the assistant's reply to a conversation ending in a user message.
type Generator interface {
	Generate(ctx context.Context, history []models.ChatMessage) (string, error)
}

// GeminiGenerator talks to the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator returns nil, nil when apiKey is empty so the assistant degrades to Fallback.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, nil
	}
	if model == "" {
		model = game_constants.DEFAULT_GEMINI_MODEL
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, history []models.ChatMessage) (string, error) {
	if g == nil || g.client == nil {
		return "", errNoClient
	}
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := genai.Role(genai.RoleUser)
		if genai.Role(msg.Role) == genai.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty response")
	}
	return text, nil
}

type Service struct {
	generator Generator
	missions  *missions.Service
	log       *zap.Logger
}

// NewService accepts a nil generator; every reply is then Fallback.
func NewService(generator Generator, missions *missions.Service, log *zap.Logger) *Service {
	return &Service{generator: generator, missions: missions, log: log.Named("assistant")}
}

// Reply answers the last user message of history. Upstream failures never surface as errors.
func (s *Service) Reply(ctx context.Context, subject string, history []models.ChatMessage) (string, error) {
	if len(history) == 0 {
		return "", apperr.New(apperr.InvalidInput, "chat history is required")
	}
	last := history[len(history)-1]
	if genai.Role(last.Role) != genai.RoleUser || strings.TrimSpace(last.Text) == "" {
		return "", apperr.New(apperr.InvalidInput, "invalid chat history format")
	}

	if len(history) == 1 {
		s.missions.Record(ctx, subject, game_constants.MISSION_CHAT_WITH_PICTO, 1)
	}

	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	if s.generator == nil {
		return Fallback, nil
	}
	reply, err := s.generator.Generate(ctx, history)
	if err != nil {
		s.log.Warn("assistant reply failed", zap.String("subject", subject), zap.Error(err))
		return Fallback, nil
	}
	return reply, nil
}
