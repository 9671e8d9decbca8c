package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

func newPostsCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Create or list posts",
	}
	cmd.AddCommand(newPostsAddCommand(o), newPostsListCommand(o))
	return cmd
}

func newPostsAddCommand(o *options) *cobra.Command {
	var text, imagePath string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a post, optionally with an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				image []byte
				name  string
			)
			if imagePath != "" {
				b, err := os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("read image: %w", err)
				}
				image, name = b, filepath.Base(imagePath)
			}

			p, err := o.api().CreatePost(cmd.Context(), text, name, image)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.jsonOutput {
				return printJSON(out, p)
			}
			fmt.Fprintf(out, "Created post #%d\n", p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "post text")
	cmd.Flags().StringVar(&imagePath, "image", "", "path of an image to attach")

	return cmd
}

func newPostsListCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List posts with their comments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			posts, err := o.api().ListPosts(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.jsonOutput {
				return printJSON(out, posts)
			}
			for _, p := range posts {
				fmt.Fprintf(out, "#%d %s\n", p.ID, p.Text)
				if p.Image != nil {
					fmt.Fprintf(out, "  [image: %d bytes]\n", len(p.Image))
				}
				for _, c := range p.Comments {
					fmt.Fprintf(out, "  %s: %s\n", c.Author, c.Text)
				}
			}
			return nil
		},
	}
}

func newCommentsCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Comment on posts",
	}
	cmd.AddCommand(newCommentsAddCommand(o))
	return cmd
}

func newCommentsAddCommand(o *options) *cobra.Command {
	var author, text string

	cmd := &cobra.Command{
		Use:   "add <post-id>",
		Short: "Add a comment to a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid post id %q", args[0])
			}

			c, err := o.api().AddComment(cmd.Context(), id, author, text)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.jsonOutput {
				return printJSON(out, c)
			}
			fmt.Fprintf(out, "Comment added to post #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "comment author")
	cmd.Flags().StringVar(&text, "text", "", "comment text")

	return cmd
}
