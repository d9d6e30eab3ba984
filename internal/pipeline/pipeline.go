package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"s3organizer/internal/models"
	"s3organizer/internal/s3client"
	"s3organizer/internal/scraper"
	"s3organizer/pkg/utils"
)

// Pipeline runs the whole migration: fetch the listing page, classify each
// link, collect statistics and, unless dry-running, stream every file to
// the destination bucket. Processing is strictly sequential and aborts on
// the first transfer failure.
type Pipeline struct {
	scraper    *scraper.Scraper
	httpClient *http.Client
	uploader   s3client.Uploader
	out        io.Writer
}

func New(httpClient *http.Client, uploader s3client.Uploader, out io.Writer) *Pipeline {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Pipeline{
		scraper:    scraper.New(httpClient),
		httpClient: httpClient,
		uploader:   uploader,
		out:        out,
	}
}

func (p *Pipeline) Run(ctx context.Context, pageURL string, target s3client.DestinationTarget, dryRun bool) error {
	mode := "ACTUAL RUN"
	if dryRun {
		mode = "DRY RUN"
	}

	fmt.Fprintf(p.out, "\n=== Starting %s ===\n", mode)
	fmt.Fprintf(p.out, "Base URL: %s\n", pageURL)
	fmt.Fprintf(p.out, "Target S3: %s\n", target)
	fmt.Fprintf(p.out, "%s\n\n", strings.Repeat("=", 50))

	links, err := p.scraper.FetchLinks(ctx, pageURL)
	if err != nil {
		return err
	}

	stats := models.NewRunStats()

	fmt.Fprintln(p.out, "Files to be processed:")
	fmt.Fprintln(p.out, strings.Repeat("-", 50))

	for _, link := range links {
		destinationPath, label := Classify(target.Prefix, link.Name)

		size, err := p.headSize(ctx, link.URL)
		if err != nil {
			return fmt.Errorf("failed to get size of %s: %w", link.Name, err)
		}

		stats.Record(models.FileEntry{
			Name:            link.Name,
			SourceURL:       link.URL,
			Size:            size,
			DestinationPath: destinationPath,
			GroupLabel:      label,
		})

		if !dryRun {
			fmt.Fprintf(p.out, "Uploading %s...\n", link.Name)
			if err := p.transfer(ctx, link, target.Bucket, destinationPath); err != nil {
				return fmt.Errorf("failed to process %s: %w", link.Name, err)
			}
			fmt.Fprintf(p.out, "Successfully uploaded %s\n", link.Name)
		}
	}

	p.printSummary(stats, target.Bucket)

	return nil
}

// headSize asks the origin for the file size without downloading the body.
// A missing or invalid Content-Length counts as size 0.
func (p *Pipeline) headSize(ctx context.Context, fileURL string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, fileURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.ContentLength < 0 {
		return 0, nil
	}
	return resp.ContentLength, nil
}

// transfer streams the file body from the origin straight into the
// uploader. The response body is the only long-lived resource here and is
// released on every path.
func (p *Pipeline) transfer(ctx context.Context, link scraper.Link, bucket, destinationPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download: unexpected status %s", resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = s3client.DetectContentType(link.Name)
	}

	return p.uploader.Upload(ctx, bucket, destinationPath, contentType, resp.Body)
}

func (p *Pipeline) printSummary(stats *models.RunStats, bucket string) {
	fmt.Fprintln(p.out, "\n=== Summary ===")
	fmt.Fprintf(p.out, "Total files to process: %d\n", stats.TotalFiles)
	fmt.Fprintf(p.out, "Total size: %s\n", utils.FormatGB(stats.TotalBytes))
	fmt.Fprintln(p.out, "\nFiles by folder:")

	for _, label := range stats.GroupLabels() {
		entries := stats.Group(label)

		fmt.Fprintf(p.out, "\n%s:\n", label)
		fmt.Fprintf(p.out, "  Total files: %d\n", len(entries))
		fmt.Fprintf(p.out, "  Total size: %s\n", utils.FormatGB(stats.GroupSize(label)))
		fmt.Fprintln(p.out, "  Files:")
		for _, entry := range entries {
			fmt.Fprintf(p.out, "    - %s (%s)\n", entry.Name, utils.FormatMB(entry.Size))
			fmt.Fprintf(p.out, "      → s3://%s/%s\n", bucket, entry.DestinationPath)
		}
	}
}
