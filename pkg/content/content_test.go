package content_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-portfolio-backend/pkg/content"
	"go-portfolio-backend/web"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedContent(t *testing.T) {
	p, err := content.LoadFS(web.FS, web.ContentFile)
	require.NoError(t, err)

	assert.Equal(t, "Abdurahman H Beriso", p.Owner)
	assert.NotEmpty(t, p.Hero.Links)
	assert.Contains(t, string(p.About.BodyHTML), "<strong>Python</strong>")
	assert.Len(t, p.Projects, 3)
	assert.NotEmpty(t, p.Projects[0].DescriptionHTML)
	assert.NotEmpty(t, p.Education)
	assert.NotEmpty(t, p.Testimonials)
}

func TestLoadRendersMarkdownSafely(t *testing.T) {
	src := `
owner: Jo
about:
  heading: About
  body: "Hello <script>alert(1)</script> *world*"
projects:
  - title: Site
    description: "See https://example.com"
`
	p, err := content.Load(strings.NewReader(src))
	require.NoError(t, err)

	assert.NotContains(t, string(p.About.BodyHTML), "<script>")
	assert.Contains(t, string(p.About.BodyHTML), "<em>world</em>")
	assert.Contains(t, string(p.Projects[0].DescriptionHTML), `<a href="https://example.com">`)
}

func TestLoadRejectsMissingOwner(t *testing.T) {
	_, err := content.Load(strings.NewReader("hero:\n  title: Hi\n"))
	assert.ErrorIs(t, err, content.ErrMissingOwner)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := content.Load(strings.NewReader("owner: Jo\nheroes: []\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("owner: Jo\nfooter: bye\n"), 0o600))

	p, err := content.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bye", p.Footer)

	_, err = content.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Dejene Iticha":        "DI",
		"Prof. Birhanu Tafesa": "PB",
		"biruk":                "B",
		"":                     "",
		"Ana María López":      "AM",
	}
	for author, want := range tests {
		assert.Equal(t, want, content.Testimonial{Author: author}.Initials(), author)
	}
}

type mockObjectGetter struct {
	mock.Mock
}

func (m *mockObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func TestLoadS3(t *testing.T) {
	t.Run("Should parse the fetched object", func(t *testing.T) {
		getter := new(mockObjectGetter)
		getter.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
			return aws.ToString(in.Bucket) == "site" && aws.ToString(in.Key) == "portfolio.yaml"
		})).Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("owner: Jo\n"))}, nil)

		p, err := content.LoadS3(context.Background(), getter, "site", "portfolio.yaml")
		require.NoError(t, err)
		assert.Equal(t, "Jo", p.Owner)
		getter.AssertExpectations(t)
	})

	t.Run("Should wrap fetch errors", func(t *testing.T) {
		getter := new(mockObjectGetter)
		getter.On("GetObject", mock.Anything, mock.Anything).Return(nil, errors.New("NoSuchKey"))

		_, err := content.LoadS3(context.Background(), getter, "site", "missing.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "s3://site/missing.yaml")
	})
}
