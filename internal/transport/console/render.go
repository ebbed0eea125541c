package console

import (
	"fmt"
	"strings"

	"millionaire-game/internal/app"
	"millionaire-game/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	screenWidth = 70
	boxWidth    = 66
	ladderWidth = 40
	bannerWidth = 60
)

var (
	colorCyan   = lipgloss.Color("6")
	colorYellow = lipgloss.Color("3")
	colorGreen  = lipgloss.Color("2")
	colorRed    = lipgloss.Color("1")
	colorPurple = lipgloss.Color("5")
	colorBlue   = lipgloss.Color("4")
	colorWhite  = lipgloss.Color("7")
)

var prizePrinter = message.NewPrinter(language.English)

// formatPrize renders an amount in dollars with thousands separators.
func formatPrize(amount int) string {
	return prizePrinter.Sprintf("$%d", amount)
}

// renderer builds the text blocks of the board. Every method returns a string
// so the session decides when to write.
type renderer struct {
	noColor bool
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// emphasize applies optional bold color styling.
func emphasize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}

func (r renderer) box(content string, border lipgloss.Border, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Border(border).Padding(0, 1).Width(width)
	if !r.noColor {
		style = style.BorderForeground(color)
	}
	return style.Render(content) + "\n"
}

func (r renderer) title(text string) string {
	rule := stylize(strings.Repeat("═", screenWidth), r.noColor, colorCyan)
	heading := lipgloss.PlaceHorizontal(screenWidth, lipgloss.Center, strings.ToUpper(text))
	return "\n" + rule + "\n" + emphasize(heading, r.noColor, colorYellow) + "\n" + rule + "\n\n"
}

func (r renderer) separator() string {
	return stylize(strings.Repeat("─", screenWidth), r.noColor, colorCyan) + "\n"
}

func (r renderer) banner(heading string, color lipgloss.Color, lines ...string) string {
	rule := stylize(strings.Repeat("=", bannerWidth), r.noColor, color)
	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString(emphasize(heading, r.noColor, color) + "\n")
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	b.WriteString(rule + "\n\n")
	return b.String()
}

func (r renderer) welcome() string {
	var b strings.Builder
	b.WriteString(r.title("Who Wants to Be a Millionaire"))
	b.WriteString(emphasize("Welcome to the Millionaire game!", r.noColor, colorYellow) + "\n\n")
	b.WriteString(emphasize("Game Rules:", r.noColor, colorCyan) + "\n")
	b.WriteString(fmt.Sprintf("  • Answer %d questions correctly to win %s\n", domain.TotalLevels, formatPrize(domain.PrizeFor(domain.TotalLevels))))
	b.WriteString("  • Checkpoints at questions 5, 10, and 15 (safety nets)\n")
	b.WriteString("  • Use lifelines: 50/50, Phone a Friend, Ask the Audience\n")
	b.WriteString("  • You can walk away at any time by typing 'WALK'\n")
	b.WriteString("  • Wrong answer before a checkpoint means you lose!\n\n")
	b.WriteString(emphasize("Lifelines:", r.noColor, colorCyan) + "\n")
	b.WriteString("  • 50/50: Eliminates two wrong answers\n")
	b.WriteString("  • Phone a Friend: Get a friend's suggestion\n")
	b.WriteString("  • Ask the Audience: See audience poll results\n\n")
	b.WriteString(r.ladder(0))
	b.WriteString("\n" + stylize("Press ENTER to start the game...", r.noColor, colorYellow))
	return b.String()
}

// ladder draws the 15 rungs top-down. Passed levels are green, the current one
// is marked and highlighted, checkpoints carry a check mark.
func (r renderer) ladder(current int) string {
	rungs := domain.Ladder()
	rows := make([]string, 0, len(rungs)+1)
	rows = append(rows, "PRIZE LADDER")
	for i := len(rungs) - 1; i >= 0; i-- {
		rung := rungs[i]
		marker, checkpoint := "  ", "  "
		if rung.Level == current {
			marker = "▶ "
		}
		if rung.Checkpoint {
			checkpoint = " ✓"
		}
		row := fmt.Sprintf("%sLevel %2d: %-12s%s", marker, rung.Level, formatPrize(rung.Prize), checkpoint)
		switch {
		case rung.Level == current:
			row = emphasize(row, r.noColor, colorYellow)
		case rung.Level < current:
			row = stylize(row, r.noColor, colorGreen)
		}
		rows = append(rows, row)
	}
	return r.box(strings.Join(rows, "\n"), lipgloss.DoubleBorder(), colorCyan, ladderWidth)
}

func (r renderer) questionHeader(level int) string {
	var b strings.Builder
	b.WriteString(r.title(fmt.Sprintf("Question %d", level)))
	b.WriteString(emphasize("Prize: ", r.noColor, colorWhite) + emphasize(formatPrize(domain.PrizeFor(level)), r.noColor, colorGreen) + "\n")
	if domain.IsCheckpoint(level) {
		b.WriteString(emphasize("✓ CHECKPOINT - Safety net at this level!", r.noColor, colorYellow) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// question renders q with the option view the player currently sees.
func (r renderer) question(q domain.Question, view []domain.Option) string {
	var b strings.Builder
	switch q.Kind {
	case domain.KindIllustrated:
		art := strings.TrimRight(q.Art, "\n")
		b.WriteString(r.box(emphasize(lipgloss.PlaceHorizontal(boxWidth-2, lipgloss.Center, art), r.noColor, colorYellow), lipgloss.DoubleBorder(), colorCyan, boxWidth))
		b.WriteString("\n" + emphasize("Question: ", r.noColor, colorCyan) + q.Prompt + "\n")
		b.WriteString(r.options(view))
	case domain.KindTrueFalse:
		b.WriteString(emphasize("True or False: ", r.noColor, colorCyan) + q.Prompt + "\n\n")
		b.WriteString(r.trueFalse(view))
	default:
		b.WriteString(emphasize("Question: ", r.noColor, colorCyan) + q.Prompt + "\n")
		b.WriteString(r.options(view))
	}
	return b.String()
}

func (r renderer) options(view []domain.Option) string {
	colors := []lipgloss.Color{colorGreen, colorBlue, colorYellow, colorPurple}
	rows := make([]string, 0, len(view)+2)
	rows = append(rows, lipgloss.PlaceHorizontal(boxWidth-2, lipgloss.Center, "OPTIONS"))
	rows = append(rows, strings.Repeat("─", boxWidth-2))
	for i, opt := range view {
		rows = append(rows, emphasize("Option "+opt.Key+": ", r.noColor, colors[i%len(colors)])+opt.Text)
	}
	return "\n" + r.box(strings.Join(rows, "\n"), lipgloss.DoubleBorder(), colorCyan, boxWidth)
}

func (r renderer) trueFalse(view []domain.Option) string {
	rows := make([]string, 0, len(view))
	for _, opt := range view {
		color := colorGreen
		if opt.Key == "F" {
			color = colorRed
		}
		rows = append(rows, emphasize("Option "+opt.Key+": "+opt.Text, r.noColor, color))
	}
	return r.box(strings.Join(rows, "\n"), lipgloss.RoundedBorder(), colorCyan, ladderWidth)
}

func (r renderer) lifelineLine(available []domain.Lifeline) string {
	if len(available) == 0 {
		return "\n" + stylize("No lifelines available!", r.noColor, colorPurple) + "\n"
	}
	names := make([]string, 0, len(available))
	for _, name := range available {
		names = append(names, stylize(string(name), r.noColor, colorPurple))
	}
	return "\n" + emphasize("Available Lifelines: ", r.noColor, colorPurple) + strings.Join(names, ", ") + "\n"
}

func (r renderer) lifelineMenu(available []domain.Lifeline) string {
	var b strings.Builder
	b.WriteString("\n" + emphasize("Available lifelines:", r.noColor, colorCyan) + "\n")
	for i, name := range available {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, name))
	}
	b.WriteString("\n" + stylize("Enter lifeline number or name: ", r.noColor, colorYellow))
	return b.String()
}

// lifelineResult switches on the result tag; removed is how many options 50/50
// took out of the view.
func (r renderer) lifelineResult(result app.LifelineResult, removed int) string {
	switch result.Kind {
	case app.ResultReducedOptions:
		note := "No incorrect answers could be removed."
		switch {
		case removed == 1:
			note = "One incorrect answer has been removed."
		case removed > 1:
			note = fmt.Sprintf("%d incorrect answers have been removed.", removed)
		}
		return r.banner("50/50 LIFELINE USED!", colorYellow, note) +
			emphasize("Remaining options:", r.noColor, colorCyan) + "\n" + r.options(result.Options)
	case app.ResultSuggestedAnswer:
		s := result.Suggestion
		line := fmt.Sprintf("Your friend says: \"Hmm, I think it might be %s, but I'm not 100%% sure...\"", stylize(s.Key, r.noColor, colorYellow))
		if s.Confident {
			line = fmt.Sprintf("Your friend says: \"I'm %s sure the answer is %s!\"", emphasize(fmt.Sprintf("%d%%", s.Confidence), r.noColor, colorGreen), s.Key)
		}
		return r.banner("PHONE A FRIEND LIFELINE USED!", colorCyan, line)
	case app.ResultAudiencePoll:
		lines := []string{"The audience votes:", ""}
		for _, entry := range result.Poll {
			bar := stylize(strings.Repeat("█", entry.Percent/2), r.noColor, colorGreen)
			lines = append(lines, fmt.Sprintf("Option %s: %s %s", entry.Key, bar, emphasize(fmt.Sprintf("%d%%", entry.Percent), r.noColor, colorYellow)))
		}
		return r.banner("ASK THE AUDIENCE LIFELINE USED!", colorPurple, lines...)
	default:
		return ""
	}
}

func (r renderer) answerResult(outcome app.AnswerOutcome) string {
	var b strings.Builder
	b.WriteString("\n" + r.separator())
	prize := formatPrize(outcome.State.Prize)
	switch {
	case outcome.Correct:
		b.WriteString("\n" + emphasize("✓ CORRECT ANSWER!", r.noColor, colorGreen) + "\n")
		b.WriteString("You've won: " + emphasize(prize, r.noColor, colorGreen) + "\n")
	case domain.IsCheckpoint(outcome.Level):
		b.WriteString("\n" + emphasize("✗ WRONG ANSWER!", r.noColor, colorRed) + "\n")
		b.WriteString(fmt.Sprintf("The correct answer was %s.\n", outcome.CorrectKey))
		b.WriteString(stylize("But you're at a checkpoint! You walk away with: ", r.noColor, colorYellow) + emphasize(prize, r.noColor, colorYellow) + "\n")
	default:
		b.WriteString("\n" + emphasize("✗ WRONG ANSWER!", r.noColor, colorRed) + "\n")
		b.WriteString(fmt.Sprintf("The correct answer was %s.\n", outcome.CorrectKey))
		if outcome.State.Prize > 0 {
			b.WriteString(stylize("You walk away with: ", r.noColor, colorYellow) + emphasize(prize, r.noColor, colorYellow) + "\n")
		} else {
			b.WriteString(stylize("You walk away with $0", r.noColor, colorRed) + "\n")
		}
	}
	b.WriteString(r.separator())
	return b.String()
}

func (r renderer) walkAway(state domain.GameState) string {
	return "\n" + emphasize("You've decided to walk away!", r.noColor, colorYellow) + "\n" +
		"You take home: " + emphasize(formatPrize(state.Prize), r.noColor, colorGreen) + "\n"
}

func (r renderer) finalScreen(state domain.GameState) string {
	var b strings.Builder
	if state.Status == domain.StatusWon {
		b.WriteString(r.title("Congratulations!"))
		b.WriteString(emphasize("🎉 YOU ARE A MILLIONAIRE! 🎉", r.noColor, colorGreen) + "\n\n")
		b.WriteString(fmt.Sprintf("You've successfully answered all %d questions!\n", domain.TotalLevels))
		b.WriteString(emphasize("Total Prize: ", r.noColor, colorWhite) + emphasize(formatPrize(state.Prize), r.noColor, colorGreen) + "\n\n")
	} else {
		b.WriteString(r.title("Game Over"))
		b.WriteString(fmt.Sprintf("You made it to question %d\n", state.Level-1))
		b.WriteString(emphasize("Total Prize: ", r.noColor, colorWhite) + emphasize(formatPrize(state.Prize), r.noColor, colorYellow) + "\n\n")
	}
	b.WriteString(r.separator())
	return b.String()
}

func (r renderer) prompt(text string) string {
	return stylize(text, r.noColor, colorYellow)
}

func (r renderer) failure(text string) string {
	return stylize(text, r.noColor, colorRed) + "\n"
}

// Ladder renders the prize ladder with current highlighted; 0 highlights nothing.
func Ladder(current int, noColor bool) string {
	return renderer{noColor: noColor}.ladder(current)
}
