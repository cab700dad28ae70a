package cli

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hashvatar/pkg/hashvatar"
	"github.com/matzehuels/hashvatar/pkg/render"
	"github.com/matzehuels/hashvatar/pkg/render/software"
)

// Terminal preview defaults: half-block cells pack two pixels per row,
// so 48px stays comfortably inside a standard terminal.
const (
	previewSize = 48
	previewFPS  = 12
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	mode     string
	size     int
	tones    []string
	animated bool
}

// newPreviewCmd creates the preview command, which renders an avatar
// directly in the terminal using half-block characters. With
// --animated the preview runs live until q or ctrl+c.
func newPreviewCmd() *cobra.Command {
	opts := previewOpts{size: previewSize}

	cmd := &cobra.Command{
		Use:   "preview <hash>",
		Short: "Show an avatar in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "render mode: gradient or dither")
	cmd.Flags().IntVarP(&opts.size, "size", "s", previewSize, "preview side length in pixels")
	cmd.Flags().StringSliceVarP(&opts.tones, "tone", "t", nil, "tone constraint (repeatable)")
	cmd.Flags().BoolVarP(&opts.animated, "animated", "a", false, "animate the preview")

	return cmd
}

func runPreview(cmd *cobra.Command, hash string, opts previewOpts) error {
	avOpts := hashvatar.Options{
		Hash:     hash,
		Size:     opts.size,
		Mode:     hashvatar.Mode(opts.mode),
		Animated: opts.animated,
		Tones:    opts.tones,
	}

	canvas := software.NewCanvas(opts.size)
	sched := &software.StepScheduler{}
	_, handle := hashvatar.Render(canvas, sched, avOpts)

	if !opts.animated {
		fmt.Fprintln(cmd.OutOrStdout(), blockView(canvas.Image()))
		return nil
	}

	m := previewModel{
		hash:   hash,
		canvas: canvas,
		sched:  sched,
		handle: handle,
	}
	_, err := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout())).Run()
	handle.Destroy()
	return err
}

// previewModel is the bubbletea model driving an animated preview. Each
// tick steps the deterministic frame scheduler with the tick's
// timestamp, so the terminal animation runs the same frame loop the
// library uses everywhere else.
type previewModel struct {
	hash   string
	canvas *software.Canvas
	sched  *software.StepScheduler
	handle *render.Handle
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/previewFPS, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m previewModel) Init() tea.Cmd {
	return tickCmd()
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.handle.Destroy()
			return m, tea.Quit
		}
	case tickMsg:
		m.sched.Step(time.Time(msg))
		return m, tickCmd()
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder
	b.WriteString(blockView(m.canvas.Image()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(m.hash + "  ·  q to quit"))
	b.WriteString("\n")
	return b.String()
}

// blockView renders an image with upper-half-block characters, packing
// two pixel rows into each terminal row.
func blockView(img *image.RGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", top.R, top.G, top.B))).
				Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", bottom.R, bottom.G, bottom.B)))
			sb.WriteString(style.Render("▀"))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
