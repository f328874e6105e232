package mdcourse

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-logr/logr"

	"github.com/alnah/go-mdcourse/internal/fileutil"
	"github.com/alnah/go-mdcourse/internal/pipeline"
)

const indexFile = "index.md"

// Input holds the parameters of a single compilation.
type Input struct {
	// Root is the course directory. When FS is set, Root only labels paths
	// in errors and warnings.
	Root string

	// FS, when non-nil, is read instead of the Root directory. Its root
	// is the course directory.
	FS fs.FS

	// KeepCompiled writes the compiled document to a mdcourse-*.md file
	// in DebugDir (os.TempDir when empty) and leaves it there.
	KeepCompiled bool
	DebugDir     string
}

// Result is the outcome of a successful compilation.
type Result struct {
	Markdown  string    // merged course document, one trailing newline
	Warnings  []Warning // index bodies that were discarded
	DebugPath string    // set when Input.KeepCompiled
}

// Warning reports an index.md whose uncommented body was ignored.
type Warning struct {
	Level string // "Course", "Chapter" or "Sequential"
	Path  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s index.md has uncommented text body, ignoring it: %s", w.Level, w.Path)
}

// Compiler merges a course folder into one Markdown document.
// A Compiler holds no per-run state and may be reused.
type Compiler struct {
	log logr.Logger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger receiving warnings (V(0)) and skipped
// subtrees (V(1)). The default discards everything.
func WithLogger(l logr.Logger) Option {
	return func(c *Compiler) {
		c.log = l
	}
}

// NewCompiler creates a Compiler.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{log: logr.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile walks the course described by in and returns the merged document.
// Any structural error aborts the run and no partial document is returned.
func (c *Compiler) Compile(ctx context.Context, in Input) (*Result, error) {
	fsys, root, err := in.source()
	if err != nil {
		return nil, err
	}

	var out builder
	w := &walker{fsys: fsys, root: root, log: c.log, emit: out.emit}
	if err := w.walkFolder(ctx, ".", 0); err != nil {
		return nil, err
	}

	res := &Result{Markdown: out.String(), Warnings: w.warnings}

	if in.KeepCompiled {
		p, _, err := fileutil.WriteTempFile(in.DebugDir, res.Markdown, "md")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDebugWrite, err)
		}
		res.DebugPath = p
		c.log.V(1).Info("compiled document kept", "path", p)
	}

	return res, nil
}

// Compile is a convenience wrapper using a default Compiler.
func Compile(ctx context.Context, root string) (*Result, error) {
	return NewCompiler().Compile(ctx, Input{Root: root})
}

// source resolves the file system to walk and the label for its root.
func (in Input) source() (fs.FS, string, error) {
	if in.FS != nil {
		root := in.Root
		if root == "" {
			root = "."
		}
		info, err := fs.Stat(in.FS, ".")
		if err != nil || !info.IsDir() {
			return nil, "", fmt.Errorf("%w: %s", ErrInvalidRoot, root)
		}
		return in.FS, root, nil
	}

	if in.Root == "" || !fileutil.DirExists(in.Root) {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidRoot, in.Root)
	}
	return os.DirFS(in.Root), in.Root, nil
}

// ---------------------------------------------------------------------------
// Traversal
// ---------------------------------------------------------------------------

// folderLevel describes one directory depth of the course tree.
type folderLevel struct {
	label        string
	depth        int  // heading level
	requireIndex bool // missing index.md is fatal instead of skipping
	suppressible bool // hidden/draft apply
	heading      func(depth int, fm Frontmatter, dirName string) string
}

// Course, chapter and sequential share one walk; units hang off the last level.
var folderLevels = [...]folderLevel{
	{label: "Course", depth: 1, requireIndex: true, heading: courseHeading},
	{label: "Chapter", depth: 2, suppressible: true, heading: folderHeading},
	{label: "Sequential", depth: 3, suppressible: true, heading: folderHeading},
}

const unitDepth = len(folderLevels) + 1

// document is a parsed Markdown source file.
type document struct {
	fm   Frontmatter
	body string
}

// walker carries the read side of one compilation. Output goes through emit.
type walker struct {
	fsys     fs.FS
	root     string
	log      logr.Logger
	emit     func(block string)
	warnings []Warning
}

func (w *walker) walkFolder(ctx context.Context, dir string, lvl int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	level := folderLevels[lvl]
	indexPath := path.Join(dir, indexFile)

	doc, err := w.read(indexPath)
	if errors.Is(err, fs.ErrNotExist) {
		if level.requireIndex {
			return fmt.Errorf("%w: %s", ErrMissingIndex, w.display(indexPath))
		}
		w.log.V(1).Info("skipping "+strings.ToLower(level.label)+" without index.md", "path", w.display(dir))
		return nil
	}
	if err != nil {
		return err
	}

	if level.suppressible && doc.fm.Suppressed() {
		w.log.V(1).Info("skipping hidden "+strings.ToLower(level.label), "path", w.display(dir))
		return nil
	}

	if HasUncommentedText(doc.body) {
		w.warn(level.label, indexPath)
	}

	w.emit(level.heading(level.depth, doc.fm, path.Base(dir)))

	if lvl+1 == len(folderLevels) {
		return w.walkUnits(ctx, dir)
	}

	children, err := w.listEntries(dir, func(e entry) bool { return e.isDir })
	if err != nil {
		return err
	}
	if err := w.sortEntries(children); err != nil {
		return err
	}
	for _, child := range children {
		if err := w.walkFolder(ctx, child.path, lvl+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkUnits(ctx context.Context, dir string) error {
	units, err := w.listEntries(dir, func(e entry) bool {
		return e.isMarkdown() && e.name != indexFile
	})
	if err != nil {
		return err
	}
	if err := w.sortEntries(units); err != nil {
		return err
	}

	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return err
		}
		if u.doc.fm.Suppressed() {
			w.log.V(1).Info("skipping hidden unit", "path", w.display(u.path))
			continue
		}
		if title, ok := u.doc.fm.Title(); ok {
			w.emit(heading(unitDepth, title))
		}
		w.emit(strings.TrimRightFunc(u.doc.body, unicode.IsSpace))
	}
	return nil
}

// read loads and parses one Markdown file.
func (w *walker) read(p string) (*document, error) {
	data, err := fs.ReadFile(w.fsys, p)
	if err != nil {
		return nil, w.readError(p, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s: not valid UTF-8", ErrRead, w.display(p))
	}

	fm, body, err := ParseFrontmatter(pipeline.NormalizeLineEndings(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.display(p), err)
	}
	return &document{fm: fm, body: body}, nil
}

// readError wraps an fs error with ErrRead and the display path.
// The underlying error stays inspectable (fs.ErrNotExist, fs.ErrPermission).
func (w *walker) readError(p string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return fmt.Errorf("%w: %s: %w", ErrRead, w.display(p), err)
}

func (w *walker) warn(label, p string) {
	warning := Warning{Level: label, Path: w.display(p)}
	w.warnings = append(w.warnings, warning)
	w.log.Info(label+" index.md has uncommented text body, ignoring it", "path", warning.Path)
}

// display maps a course-relative path to the path shown to users.
func (w *walker) display(p string) string {
	return filepath.Join(w.root, filepath.FromSlash(p))
}

// ---------------------------------------------------------------------------
// Output
// ---------------------------------------------------------------------------

// builder accumulates output blocks, each followed by a blank line.
type builder struct {
	lines []string
}

func (b *builder) emit(block string) {
	b.lines = append(b.lines, block, "")
}

// String joins the blocks and trims the result to a single trailing newline.
func (b *builder) String() string {
	return strings.TrimSpace(strings.Join(b.lines, "\n")) + "\n"
}

func heading(depth int, title string) string {
	return strings.Repeat("#", depth) + " " + title
}

// courseHeading renders the level-1 heading with the course identifiers
// as a bracketed attribute suffix.
func courseHeading(depth int, fm Frontmatter, _ string) string {
	return fmt.Sprintf("%s {olx-org=%s olx-course=%s olx-url_name=%s}",
		heading(depth, fm.String("title", "Untitled Course")),
		fm.String("org", "org"),
		fm.String("course", "course"),
		fm.String("url_name", "course"),
	)
}

// folderHeading titles a chapter or sequential, defaulting to its directory name.
func folderHeading(depth int, fm Frontmatter, dirName string) string {
	return heading(depth, fm.String("title", dirName))
}
