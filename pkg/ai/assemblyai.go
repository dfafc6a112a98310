package ai

import (
	"context"
	"fmt"
	"io"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/lfnovo/ai-meeting-notes/pkg/config"
)

// AssemblyAIClient wraps the official AssemblyAI SDK for audio transcription
type AssemblyAIClient struct {
	client *aai.Client
}

// NewAssemblyAIClient creates a transcription client using values from the
// provided config. Pass a nil config to fall back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}

	return &AssemblyAIClient{
		client: aai.NewClient(apiKey),
	}
}

// Transcribe uploads the audio stream and blocks until the transcript is
// ready, returning its plain text.
func (a *AssemblyAIClient) Transcribe(ctx context.Context, audio io.Reader) (string, error) {
	transcript, err := a.client.Transcripts.TranscribeFromReader(ctx, audio, nil)
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		errMsg := "transcription failed"
		if transcript.Error != nil {
			errMsg = *transcript.Error
		}
		return "", fmt.Errorf("assemblyai error: %s", errMsg)
	}

	if transcript.Text == nil {
		return "", fmt.Errorf("assemblyai returned no transcript text")
	}
	return *transcript.Text, nil
}
