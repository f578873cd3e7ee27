package normalize

import "testing"

// TestText tests visible-text extraction from HTML.
func TestText(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		markup   string
		expected string
	}{
		{
			name:     "empty input",
			markup:   "",
			expected: "",
		},
		{
			name:     "whitespace only",
			markup:   "   \n\t  ",
			expected: "",
		},
		{
			name:     "plain paragraph",
			markup:   "<html><body><p>Serviços de contabilidade</p></body></html>",
			expected: "Serviços de contabilidade",
		},
		{
			name:     "fragments joined with newlines",
			markup:   "<div><h1>Empresa</h1><p>Endereço</p><p>Contato</p></div>",
			expected: "Empresa\nEndereço\nContato",
		},
		{
			name:     "script content dropped",
			markup:   "<body><script>var x = 'garantido';</script><p>texto</p></body>",
			expected: "texto",
		},
		{
			name:     "style content dropped",
			markup:   "<body><style>.a{color:red}</style><p>texto</p></body>",
			expected: "texto",
		},
		{
			name:     "noscript content dropped",
			markup:   "<body><noscript>ative o javascript</noscript><p>texto</p></body>",
			expected: "texto",
		},
		{
			name:     "surrounding whitespace trimmed per fragment",
			markup:   "<p>  a  </p><p>\n b \n</p>",
			expected: "a\nb",
		},
		{
			name:     "unclosed tags tolerated",
			markup:   "<p>primeiro<p>segundo",
			expected: "primeiro\nsegundo",
		},
		{
			name:     "text without any markup",
			markup:   "apenas texto",
			expected: "apenas texto",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Text(tc.markup); got != tc.expected {
				t.Errorf("Text(%q) = %q, expected %q", tc.markup, got, tc.expected)
			}
		})
	}
}

// TestTextCollapsesBlankLines tests the newline-run collapse.
func TestTextCollapsesBlankLines(t *testing.T) {
	t.Parallel()

	// A text node carrying internal blank lines survives parsing as a
	// single fragment; the collapse keeps one newline.
	got := Text("<pre>linha um\n\n\nlinha dois</pre>")
	if got != "linha um\nlinha dois" {
		t.Errorf("got %q, expected %q", got, "linha um\nlinha dois")
	}
}

// TestTextIdempotent tests that normalizing already-normalized text
// returns it unchanged.
func TestTextIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<body><h1>Empresa</h1><script>x</script><p>CNPJ 51.999.609/0001-57</p></body>",
		"<div>a</div><div>b</div><div>c</div>",
		"texto simples",
	}

	for _, markup := range inputs {
		once := Text(markup)
		twice := Text(once)
		if once != twice {
			t.Errorf("normalization not idempotent for %q: %q != %q", markup, once, twice)
		}
	}
}
