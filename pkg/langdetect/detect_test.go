package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gofluent/pkg/langdetect"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		expected langdetect.Language
	}{
		{
			name:     "fluent message",
			path:     "en/main.ftl",
			content:  "hello = Hello, { $user }!\n",
			expected: langdetect.Fluent,
		},
		{
			name:     "fluent term after comments",
			path:     "brand.ftl",
			content:  "### Brand names\n\n-brand-name = Firefox\n",
			expected: langdetect.Fluent,
		},
		{
			name:     "freemarker directive",
			path:     "page.ftl",
			content:  "<#list items as item>\n  ${item.name}\n</#list>\n",
			expected: langdetect.FreeMarker,
		},
		{
			name:     "freemarker interpolation",
			path:     "mail.ftl",
			content:  "Dear ${user.name},\n",
			expected: langdetect.FreeMarker,
		},
		{
			name:     "fluent text with dollar brace",
			path:     "en-US/main.ftl",
			content:  "price = Costs ${ $amount }\n",
			expected: langdetect.Fluent,
		},
		{
			name:     "empty ftl",
			path:     "empty.ftl",
			content:  "",
			expected: langdetect.Fluent,
		},
		{
			name:     "comments only ftl",
			path:     "todo.ftl",
			content:  "# nothing translated yet\n\n",
			expected: langdetect.Fluent,
		},
		{
			name:     "attribute only message",
			path:     "login.ftl",
			content:  "login-input =\n    .placeholder = email\n",
			expected: langdetect.Fluent,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.Classify(testCase.path, []byte(testCase.content))
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestIsVendored(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected bool
	}{
		{"vendor/github.com/x/y/en.ftl", true},
		{"web/node_modules/pkg/locales/en.ftl", true},
		{"locales/en-US/main.ftl", false},
		{"main.ftl", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, langdetect.IsVendored(tt.path))
		})
	}
}
