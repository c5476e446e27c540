package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"titlesmith/internal/adapters/storefront"
	"titlesmith/internal/core/lexicon"
	"titlesmith/internal/core/profile"
	"titlesmith/internal/core/version"
	"titlesmith/internal/platform/config"
	"titlesmith/internal/services/api/listings/domain"
	"titlesmith/internal/services/api/listings/service"
)

// globals holds the persistent flags shared by every subcommand
type globals struct {
	profile    string
	lexicon    string
	storefront string
	asJSON     bool
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:          "titlesmith",
		Short:        "Compose budget-bounded jewelry listing titles",
		Version:      version.Info("titlesmith").String(),
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&g.profile, "profile", "p", "", "title profile (canonical, legacy, strict); default from CORE_TITLE_PROFILE")
	root.PersistentFlags().StringVar(&g.lexicon, "lexicon", "", "external lexicon file (.json, .yaml); default from CORE_LEXICON_PATH")
	root.PersistentFlags().StringVar(&g.storefront, "storefront", "", "storefront base url; default from CORE_STOREFRONT_BASE_URL")
	root.PersistentFlags().BoolVar(&g.asJSON, "json", false, "print the full listing as JSON")

	root.AddCommand(newTitleCmd(g), newFetchCmd(g), newProfilesCmd(g))
	return root
}

func newTitleCmd(g *globals) *cobra.Command {
	var (
		title string
		tags  []string
	)
	cmd := &cobra.Command{
		Use:   "title [raw title]",
		Short: "Compose a listing title from raw title text and tags",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if title != "" {
					return fmt.Errorf("pass the title as an argument or with --title, not both")
				}
				title = args[0]
			}
			svc, err := g.service()
			if err != nil {
				return err
			}
			l, err := svc.Compose(cmd.Context(), domain.TitleInput{Title: title, Tags: tags, Profile: g.profile})
			if err != nil {
				return err
			}
			return g.print(cmd.OutOrStdout(), l)
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "raw product title")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "product tag (repeatable or comma separated)")
	return cmd
}

func newFetchCmd(g *globals) *cobra.Command {
	var allowPartial bool
	cmd := &cobra.Command{
		Use:   "fetch <url|sku>",
		Short: "Fetch a storefront product page and compose its listing title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := g.service()
			if err != nil {
				return err
			}
			l, err := svc.FromProduct(cmd.Context(), domain.ProductInput{
				Product:      args[0],
				Profile:      g.profile,
				AllowPartial: allowPartial,
			})
			if err != nil {
				return err
			}
			if l.Source.FetchError != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", l.Source.FetchError)
			}
			return g.print(cmd.OutOrStdout(), l)
		},
	}
	cmd.Flags().BoolVar(&allowPartial, "allow-partial", false, "compose from empty input when the fetch fails")
	return cmd
}

func newProfilesCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the title profiles and their budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := g.service()
			if err != nil {
				return err
			}
			infos := svc.Profiles(cmd.Context())
			out := cmd.OutOrStdout()
			if g.asJSON {
				return writeJSON(out, infos)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tBUDGET\tGIFT\tSTRICT\tRESCUE\tDEFAULT")
			for _, p := range infos {
				def := ""
				if p.Default {
					def = "*"
				}
				fmt.Fprintf(tw, "%s\t%d\t%t\t%t\t%s\t%s\n", p.Name, p.Budget, p.Gift, p.StrictDescriptors, p.Rescue, def)
			}
			return tw.Flush()
		},
	}
}

// service assembles the listing service from CORE_* config with flag overrides
func (g *globals) service() (*service.Svc, error) {
	conf := config.New().Prefix("CORE_")

	var (
		lex *lexicon.Lexicon
		err error
	)
	if g.lexicon != "" {
		lex, err = lexicon.LoadFile(g.lexicon)
	} else {
		lex, err = lexicon.FromConfig(conf)
	}
	if err != nil {
		return nil, err
	}

	def, err := profile.FromConfig(conf)
	if err != nil {
		return nil, err
	}

	opts := storefront.OptionsFromConfig(conf)
	if g.storefront != "" {
		opts.BaseURL = g.storefront
	}
	return service.New(lex, profile.NewCatalog(def), storefront.NewClient(opts)), nil
}

func (g *globals) print(w io.Writer, l domain.Listing) error {
	if g.asJSON {
		return writeJSON(w, l)
	}
	_, err := fmt.Fprintf(w, "%s\n%d/%d\n", l.Title, l.Length, l.Budget)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
