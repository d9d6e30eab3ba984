package cmd

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"s3organizer/config"
	"s3organizer/internal/pipeline"
	"s3organizer/internal/s3client"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "s3organizer",
	Short: "Upload files from a webpage to S3, organized by TB number",
	Long: `s3organizer scrapes a directory-listing webpage for file links,
sorts each file into a destination sub-folder by its TB number
(names starting with 'TB' followed by four digits), and uploads
the files to S3 by streaming them straight from the source.

By default the tool runs in dry-run mode and only reports the
planned uploads. Pass --execute to perform the actual transfer.
S3 credentials are loaded from .env file or environment variables.`,
	Example: `  # Preview what would be uploaded (default)
  s3organizer --url https://example.com/files/ --s3-path s3://my-bucket/prefix/ --dry-run

  # Perform the actual upload
  s3organizer --url https://example.com/files/ --s3-path s3://my-bucket/prefix/ --execute`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(cmd)
	},
}

func Execute(config *config.Config) error {
	cfg = config
	return rootCmd.Execute()
}

func runMigration(cmd *cobra.Command) error {
	pageURL, _ := cmd.Flags().GetString("url")
	s3Path, _ := cmd.Flags().GetString("s3-path")
	execute, _ := cmd.Flags().GetBool("execute")
	dryRunFlag, _ := cmd.Flags().GetBool("dry-run")

	// --execute overrides --dry-run; resolved once, before anything runs.
	dryRun := dryRunFlag && !execute

	// Validated before any network activity.
	target, err := s3client.ParsePath(s3Path)
	if err != nil {
		return err
	}

	if isVerbose(cmd) {
		cmd.Printf("Starting migration...\n")
		cmd.Printf("  Source: %s\n", pageURL)
		cmd.Printf("  Target: %s\n", target)
		if dryRun {
			cmd.Println("  DRY RUN MODE: No files will actually be uploaded")
		}
	}

	var uploader s3client.Uploader = s3client.NopUploader{}
	if !dryRun {
		client, err := s3client.New(cfg)
		if err != nil {
			return err
		}
		uploader = client
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	p := pipeline.New(http.DefaultClient, uploader, cmd.OutOrStdout())
	return p.Run(ctx, pageURL, target, dryRun)
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}

func init() {
	rootCmd.Flags().String("url", "", "Base URL of the webpage containing the files")
	rootCmd.Flags().String("s3-path", "", "S3 destination path (e.g., s3://bucket-name/prefix/)")
	rootCmd.Flags().Bool("dry-run", true, "Show what would be done without actually uploading")
	rootCmd.Flags().Bool("execute", false, "Actually perform the upload (overrides --dry-run)")
	rootCmd.Flags().Int("timeout", 3600, "Timeout in seconds for the whole run (default: 1 hour)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.MarkFlagRequired("url")
	rootCmd.MarkFlagRequired("s3-path")
}
