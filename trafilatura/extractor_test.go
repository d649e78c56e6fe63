package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/cratedocs"
	"github.com/fwojciec/cratedocs/goquery"
	"github.com/fwojciec/cratedocs/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements cratedocs.ContentExtractor at compile time.
var _ cratedocs.ContentExtractor = (*trafilatura.Extractor)(nil)

// crateDocsPage is a trimmed-down rustdoc crate index page.
const crateDocsPage = `<!DOCTYPE html>
<html lang="en">
<head>
<title>serde - Rust</title>
<meta name="description" content="Serde is a framework for serializing and deserializing Rust data structures">
</head>
<body class="rustdoc mod crate">
<nav class="sidebar">
<div class="sidebar-crate"><h2><a href="../serde/index.html">serde</a></h2></div>
<ul class="block"><li><a href="#modules">Modules</a></li><li><a href="#macros">Macros</a></li></ul>
</nav>
<main>
<section id="main-content" class="content">
<div class="main-heading"><h1>Crate <span>serde</span></h1></div>
<div class="docblock">
<h1 id="serde">Serde</h1>
<p>Serde is a framework for serializing and deserializing Rust data structures efficiently and generically.</p>
<p>The Serde ecosystem consists of data structures that know how to serialize and deserialize themselves along with data formats that know how to serialize and deserialize other things.</p>
<pre class="rust"><code>#[derive(Serialize, Deserialize)]
struct Point { x: i32, y: i32 }</code></pre>
</div>
</section>
</main>
<footer><p>docs.rs is run by the Rust Foundation</p></footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(crateDocsPage)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("keeps crate description", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(crateDocsPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "framework for serializing and deserializing")
	})

	t.Run("drops footer boilerplate", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(crateDocsPage)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "run by the Rust Foundation")
	})

	t.Run("blank input has no content", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract("  ")

		require.NoError(t, err)
		assert.Empty(t, result.ContentHTML)
	})

	t.Run("wraps library failures as EINTERNAL", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract(`<html><body><nav><a href="/serde">Modules</a></nav></body></html>`)

		// Pages this thin are rejected by some library versions.
		if err != nil {
			assert.Equal(t, cratedocs.EINTERNAL, cratedocs.ErrorCode(err))
			assert.Contains(t, cratedocs.ErrorMessage(err), "trafilatura: ")
		}
	})

	t.Run("feeds text extraction", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextExtractor(
			goquery.WithContentExtractor(trafilatura.NewExtractor()),
		).ExtractText(crateDocsPage)

		require.NoError(t, err)
		assert.Contains(t, text, "Serde is a framework")
		assert.NotContains(t, text, "\n")
	})
}
