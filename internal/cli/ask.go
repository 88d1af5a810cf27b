package cli

import (
	"bufio"
	"fmt"
	"strings"

	"gpuadvisor/internal/models"
	"gpuadvisor/internal/ui"

	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
)

func (a *app) askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [QUESTION...]",
		Short: "Ask the AI advisor; without a question starts an interactive session",
		Example: `  gpuadvisor ask "Is 8GB of VRAM enough for 1440p?"
  gpuadvisor ask`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			gpu, err := a.detectGPU(ctx)
			if err != nil {
				return err
			}
			advisor, err := a.advisor(a.predictor(a.catalog()))
			if err != nil {
				return fmt.Errorf("%w; set advisor.api_key or ANTHROPIC_API_KEY", err)
			}

			if len(args) > 0 {
				answer, err := advisor.Chat(ctx, gpu, strings.Join(args, " "), nil)
				if err != nil {
					return err
				}
				a.println(answer)
				return nil
			}

			a.println(ui.RenderGPU(gpu))
			a.println("Ask anything about gaming on this GPU. Type 'exit' to quit.")

			var history []models.ChatMessage
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(a.out, "\n> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				question := strings.TrimSpace(scanner.Text())
				switch strings.ToLower(question) {
				case "":
					continue
				case "exit", "quit", "q":
					return nil
				}

				answer, err := advisor.Chat(ctx, gpu, question, history)
				if err != nil {
					a.println(ui.Error(err.Error()))
					continue
				}
				a.println(answer)
				history = append(history,
					models.ChatMessage{Role: openai.ChatMessageRoleUser, Content: question},
					models.ChatMessage{Role: openai.ChatMessageRoleAssistant, Content: answer},
				)
			}
		},
	}
}
