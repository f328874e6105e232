// Package mdcourse compiles a folder of Markdown documents into a single
// course outline document.
//
// # Quick Start
//
//	res, err := mdcourse.NewCompiler().Compile(ctx, mdcourse.Input{
//	    Root: "courses/intro",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res.Markdown)
//
// # Folder Layout
//
// A course is four levels deep. Every folder may carry an index.md whose
// frontmatter describes it; units are the other .md files of a sequential:
//
//	intro/
//	├── index.md            course: title, org, course, url_name
//	├── ch1/
//	│   ├── index.md        chapter: title, hidden, draft
//	│   └── seq1/
//	│       ├── index.md    sequential: title, hidden, draft
//	│       ├── a.md        unit: title, order, hidden, draft
//	│       └── b.md
//	└── ch2/
//	    └── ...
//
// The compiled document encodes depth with heading levels:
//
//	# Intro {olx-org=X olx-course=C1 olx-url_name=u1}
//
//	## Chapter One
//
//	### Seq One
//
//	#### Unit A
//
//	Hello
//
// # Rules
//
//   - The course index.md is required (ErrMissingIndex). A chapter or
//     sequential without one is skipped with everything below it.
//   - hidden or draft set to a truthy value drops the folder or unit.
//   - Units sort by their "order" key (default 9999), then by file name.
//     Chapter and sequential folders sort by name only.
//   - Index bodies are not emitted. Uncommented text in them is reported
//     as a Warning; HTML comments are the place for author notes.
//   - Malformed frontmatter anywhere aborts the compilation (ErrParse).
//
// # Reading It Back
//
// ReadOutline parses a compiled document into an Outline, and RenderHTML
// produces an HTML preview. Both use goldmark. WithAssetDir makes relative
// image and link references in the preview point into the course folder.
//
// # Debugging
//
// Input.KeepCompiled writes the compiled document to a mdcourse-*.md file
// and reports its path in Result.DebugPath.
package mdcourse
