package configs

import "time"

// OpenAI holds settings for the chat-completion endpoint. The API key is
// not configured here: credentials are supplied by the operator per request
// and never stored on the server.
type OpenAI struct {
	// BaseURL is the endpoint root; /v1/chat/completions is appended.
	BaseURL string `env:"BASE_URL" envDefault:"https://api.openai.com"`
	// Model is the chat-completion model identifier.
	Model string `env:"MODEL" envDefault:"gpt-3.5-turbo"`
	// Timeout bounds each generation request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"20s"`
}
