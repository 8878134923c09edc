package planner_fx

import (
	"context"
	"os"

	"go.uber.org/fx"
	"tripforge/pkg/utils"
)

var Module = fx.Provide(
	providePlannerClient,
	provideEmbeddingClient)

func providePlannerClient() (utils.PlannerClientInterface, error) {
	return utils.NewGeminiPlannerClient(
		context.Background(),
		os.Getenv("GEMINI_API_KEY"),
		os.Getenv("GEMINI_MODEL"))
}

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewOpenAIEmbeddingClient(os.Getenv("OPENAI_API_KEY"))
}
