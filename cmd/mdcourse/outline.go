package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-mdcourse"
	"github.com/alnah/go-mdcourse/internal/yamlutil"
)

const untitledUnit = "(untitled)"

// runOutline compiles a course and prints the structure read back from it.
func runOutline(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseOutlineFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(flags.common, env)
	if err != nil {
		return err
	}

	root, err := resolveInputDir(positional, cfg)
	if err != nil {
		return err
	}

	res, err := compileCourse(ctx, root, cfg, env)
	if err != nil {
		return err
	}

	outline, err := mdcourse.ReadOutline(ctx, res.Markdown)
	if err != nil {
		return err
	}

	if flags.format == formatYAML {
		data, err := yamlutil.Marshal(outline)
		if err != nil {
			return fmt.Errorf("encoding outline: %w", err)
		}
		if _, err := env.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: stdout: %w", ErrWriteOutput, err)
		}
		return nil
	}

	if err := printOutline(env.Stdout, outline); err != nil {
		return fmt.Errorf("%w: stdout: %w", ErrWriteOutput, err)
	}
	return nil
}

// printOutline writes one line per node, indented two spaces per level.
func printOutline(w io.Writer, o *mdcourse.Outline) error {
	var b strings.Builder
	b.WriteString(o.Title)
	if o.Org != "" || o.Course != "" || o.URLName != "" {
		fmt.Fprintf(&b, " [%s/%s/%s]", o.Org, o.Course, o.URLName)
	}
	b.WriteByte('\n')

	for _, ch := range o.Chapters {
		fmt.Fprintf(&b, "  %s\n", ch.Title)
		for _, seq := range ch.Sequentials {
			fmt.Fprintf(&b, "    %s\n", seq.Title)
			for _, u := range seq.Units {
				title := u.Title
				if title == "" {
					title = untitledUnit
				}
				fmt.Fprintf(&b, "      %s\n", title)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
