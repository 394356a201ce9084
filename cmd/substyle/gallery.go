package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/substyle/internal/components"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle/atomic"
)

type galleryOptions struct {
	theme string
	css   bool
}

func newGalleryCmd() *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Showcase the built-in themed components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "light", "Theme to render with: light or dark")
	cmd.Flags().BoolVar(&opts.css, "css", false, "Also print the atomic CSS of the showcased components")

	return cmd
}

func runGallery(out io.Writer, opts *galleryOptions) error {
	themes := components.Themes()
	theme, ok := themes[opts.theme]
	if !ok {
		names := make([]string, 0, len(themes))
		for name := range themes {
			names = append(names, name)
		}
		slices.Sort(names)
		return newCommandError("gallery", "selecting theme", fmt.Errorf("unknown theme %q", opts.theme),
			fmt.Sprintf("Pick one of: %s.", strings.Join(names, ", ")))
	}

	previous := components.GetTheme()
	components.SetTheme(theme)
	defer components.SetTheme(previous)

	sheet := atomic.NewSheet("")

	fmt.Fprintf(out, "=== Components (%s theme) ===\n\n", theme.Name)

	fmt.Fprintln(out, "--- Buttons ---")
	variants := []components.ButtonVariant{
		components.ButtonVariantPrimary,
		components.ButtonVariantSecondary,
		components.ButtonVariantSuccess,
		components.ButtonVariantError,
		components.ButtonVariantWarning,
		components.ButtonVariantInfo,
		components.ButtonVariantMuted,
	}
	buttons := make([]*components.Button, 0, len(variants))
	for _, v := range variants {
		buttons = append(buttons, components.SimpleButton(v.String()).WithVariant(v))
	}
	fmt.Fprintln(out, components.NewButtonGroup(buttons...).View())

	sized := components.NewButtonGroup(
		components.SimpleButton("Small").WithSize(components.ButtonSizeSmall),
		components.SimpleButton("Medium"),
		components.SimpleButton("Large").WithSize(components.ButtonSizeLarge),
		components.SimpleButton("Focused").WithFocus(true),
		components.SimpleButton("Disabled").WithDisabled(true),
	)
	fmt.Fprintln(out, sized.View())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Alerts ---")
	alerts := []*components.Alert{
		components.SuccessAlert("Stylesheet loaded"),
		components.ErrorAlert("Unknown modifier"),
		components.WarningAlert("Declarations not rendered").WithDismissible(true),
		components.InfoAlert("Press ? for help"),
	}
	for _, a := range alerts {
		fmt.Fprintln(out, a.View())
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Cards ---")
	cards := []*components.Card{
		components.NewCard(components.CardData{
			Title:       "Button",
			Description: "Clickable action with variant and size modifiers.",
			Metadata:    map[string]string{"className": "btn", "modifiers": "7"},
			Actions:     []string{"resolve", "preview"},
		}),
	}
	for _, status := range components.CardStatuses {
		cards = append(cards, components.StatusCard(components.CardData{
			Title:       "Status " + status,
			Description: "Card with the &" + status + " modifier selected.",
		}, status).WithWidth(40))
	}
	for _, c := range cards {
		fmt.Fprintln(out, c.View())
	}

	if opts.css {
		// decorated views register their rules in sheet
		for _, b := range buttons {
			b.WithDecorator(sheet.Decorator()).View()
		}
		for _, c := range cards {
			c.WithDecorator(sheet.Decorator()).View()
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "--- CSS ---")
		fmt.Fprint(out, sheet.CSS())
	}

	return nil
}
