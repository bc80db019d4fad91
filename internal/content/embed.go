package content

import "embed"

// BlogsDir is the subdirectory holding article markdown documents, both in
// the embedded defaults and in an on-disk content directory.
const BlogsDir = "blogs"

// Embedded is the default content shipped in the binary: site.yaml plus the
// article markdown under blogs/. A content directory on disk with the same
// layout overrides it.
//
//go:embed site.yaml blogs
var Embedded embed.FS
