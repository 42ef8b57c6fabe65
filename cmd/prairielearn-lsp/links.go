package main

import (
	contextpkg "context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tliron/kutil/terminal"

	"github.com/PrairieLearn/vscode-prairielearn/course"
	"github.com/PrairieLearn/vscode-prairielearn/links"
)

var workspaceDir string

var linksCmd = &cobra.Command{
	Use:   "links <file>",
	Short: "Print the question links of an assessment file",
	Long: `Print the question links the server would produce for an infoAssessment.json file.
The course root is searched for upward from the file, stopping at --workspace
(default: the filesystem root).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := links.NewProvider(course.NewOSLocator())
		document, err := readDocument(provider.Locator().Fs(), args[0], workspaceDir)
		if err != nil {
			return err
		}
		result := provider.DocumentLinks(cmd.Context(), document)
		log.Debugf("%s: %s", document.Path, result.Status)
		return writeLinks(os.Stdout, terminal.StdoutStylist, document.Path, result)
	},
}

var findRootCmd = &cobra.Command{
	Use:   "root <path>",
	Short: "Print the course root enclosing a file or directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := findRoot(cmd.Context(), course.NewOSLocator(), args[0], workspaceDir)
		if err != nil {
			return err
		}
		terminal.Println(terminal.StdoutStylist.Path(root))
		return nil
	},
}

func init() {
	linksCmd.Flags().StringVarP(&workspaceDir, "workspace", "w", "", "workspace folder bounding the course root search")
	findRootCmd.Flags().StringVarP(&workspaceDir, "workspace", "w", "", "workspace folder bounding the course root search")
	rootCmd.AddCommand(linksCmd, findRootCmd)
}

func readDocument(fs afero.Fs, path string, workspace string) (links.Document, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return links.Document{}, err
	}
	boundary, err := boundaryDir(path, workspace)
	if err != nil {
		return links.Document{}, err
	}
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return links.Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return links.Document{Path: path, Boundary: boundary, Text: string(content)}, nil
}

func findRoot(context contextpkg.Context, locator *course.Locator, path string, workspace string) (string, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	boundary, err := boundaryDir(path, workspace)
	if err != nil {
		return "", err
	}

	start := path
	if isDir, err := afero.IsDir(locator.Fs(), path); err != nil {
		return "", err
	} else if !isDir {
		start = filepath.Dir(path)
	}

	if root, ok := locator.FindRoot(context, boundary, start); ok {
		return root, nil
	}
	return "", fmt.Errorf("no %s found between %s and %s", course.MarkerFile, start, boundary)
}

// boundaryDir returns the absolute workspace directory, or the volume root of
// path when no workspace is given.
func boundaryDir(path string, workspace string) (string, error) {
	if workspace == "" {
		return filepath.VolumeName(path) + string(filepath.Separator), nil
	}
	return filepath.Abs(workspace)
}

func writeLinks(writer io.Writer, stylist *terminal.Stylist, path string, result links.Result) error {
	if result.Status != links.StatusLinked {
		_, err := fmt.Fprintf(writer, "%s: %s\n", stylist.Path(path), stylist.Error(result.Status.String()))
		return err
	}

	for _, link := range result.Links {
		if _, err := fmt.Fprintf(writer, "%s:%d:%d  %s  %s\n",
			stylist.Path(path),
			link.Range.Start.Line+1,
			link.Range.Start.Character+1,
			stylist.Name(link.QID),
			stylist.Path(link.Target),
		); err != nil {
			return err
		}
	}
	return nil
}
