package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const generatorAPIURL = "https://api-inference.huggingface.co/models/microsoft/DialoGPT-medium"

// GeneratorService calls the Hugging Face inference API for free-form
// replies after the scripted stages end. It is strictly best-effort:
// when disabled or on any error the caller's fallback text is returned.
type GeneratorService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
}

type generatorRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters generatorParameters `json:"parameters"`
}

type generatorParameters struct {
	MaxLength   int     `json:"max_length"`
	DoSample    bool    `json:"do_sample"`
	Temperature float64 `json:"temperature"`
}

type generatorResponse struct {
	GeneratedText string `json:"generated_text"`
}

// NewGeneratorService reads the API key from the environment; without
// a key the service stays disabled and only ever returns fallbacks.
func NewGeneratorService() *GeneratorService {
	apiKey := os.Getenv("HUGGING_FACE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("HF_API_KEY")
	}

	return &GeneratorService{
		apiKey:  apiKey,
		apiURL:  generatorAPIURL,
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Generate produces a reply for the conversation so far, returning
// fallback on any failure.
func (g *GeneratorService) Generate(messages []ChatMessage, fallback string) string {
	if !g.enabled {
		return fallback
	}

	reply, err := g.callModel(messages)
	if err != nil {
		log.Printf("Text generation failed: %v", err)
		return fallback
	}
	if reply == "" {
		return "I understand. Let me help you find the right credit card."
	}
	return reply
}

func (g *GeneratorService) callModel(messages []ChatMessage) (string, error) {
	var conversation strings.Builder
	for i, msg := range messages {
		if i > 0 {
			conversation.WriteString("\n")
		}
		if msg.Role == "user" {
			conversation.WriteString("User: " + msg.Content)
		} else {
			conversation.WriteString("Bot: " + msg.Content)
		}
	}

	body, err := json.Marshal(generatorRequest{
		Inputs: conversation.String(),
		Parameters: generatorParameters{
			MaxLength:   100,
			DoSample:    true,
			Temperature: 0.7,
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, g.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference API error: %s", resp.Status)
	}

	var results []generatorResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("empty response from inference API")
	}

	// The model echoes the whole conversation; keep only the text
	// after the final bot marker.
	generated := results[0].GeneratedText
	if idx := strings.LastIndex(generated, "Bot:"); idx != -1 {
		generated = strings.TrimSpace(generated[idx+len("Bot:"):])
	}
	return generated, nil
}
