package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davidmontoya/vesper/internal/cli/formatter"
	"github.com/davidmontoya/vesper/internal/contract"
	"github.com/davidmontoya/vesper/internal/dialogue"
)

func newAskCmd(app *App) *cobra.Command {
	var city string
	var answers []string

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Answer a few questions, get a night built for you",
		Long: "Walk through the guided dialogue and request recommendations.\n" +
			"Interactively each question is a select prompt; with --answer the\n" +
			"dialogue is driven from flags instead (repeat in slot order).",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.resolveCity(city)
			if err != nil {
				return err
			}

			state := dialogue.NewState()
			if len(answers) > 0 {
				state, err = applyAnswers(state, answers)
			} else {
				state, err = runDialogue(state)
			}
			if err != nil {
				return err
			}

			resp, err := app.Recommend.Recommend(context.Background(), contract.RecommendRequest{
				City:  c,
				State: state,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommendations(resp))
			return nil
		},
	}

	addCityFlag(cmd.Flags(), &city)
	cmd.Flags().StringArrayVar(&answers, "answer", nil, "Pre-supplied dialogue answer (repeatable, in order)")

	// Interactive prompts need a terminal unless answers come from flags.
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if len(answers) == 0 && !app.interactive() {
			return fmt.Errorf("ask needs a terminal; use --answer to run non-interactively")
		}
		return nil
	}

	return cmd
}

// applyAnswers drives the dialogue from pre-supplied answers. Every answer
// must be valid for the slot it lands on, and the final answer must leave
// the dialogue terminal.
func applyAnswers(state dialogue.State, answers []string) (dialogue.State, error) {
	for _, a := range answers {
		slot := state.Current
		next, ok := state.Advance(a)
		if !ok {
			return state, fmt.Errorf("answer %q is not valid for %q (choose from: %s)",
				a, dialogue.Prompt(slot), strings.Join(dialogue.Choices(slot), ", "))
		}
		state = next
	}
	if !state.Terminal() {
		return state, fmt.Errorf("dialogue incomplete after %d answer(s); next question: %s",
			len(answers), dialogue.Prompt(state.Current))
	}
	return state, nil
}

// runDialogue walks the slot machine interactively, one select prompt per
// slot, until the terminal state.
func runDialogue(state dialogue.State) (dialogue.State, error) {
	for !state.Terminal() {
		var answer string
		form := wizardSelectSlot(state.Current, &answer)
		if form == nil {
			return state, fmt.Errorf("no choices for %q", state.Current)
		}
		if err := form.Run(); err != nil {
			return state, err
		}

		next, ok := state.Advance(answer)
		if !ok {
			return state, fmt.Errorf("answer %q rejected for %q", answer, state.Current)
		}
		state = next
	}
	return state, nil
}
