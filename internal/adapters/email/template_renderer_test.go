package email

import (
	"testing"

	"tripplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_TripInvite(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	data := &domain.TripInviteEmailData{
		Email:            "a@b.com",
		Destination:      "Paris",
		StartsAt:         "April 10th, 2024",
		EndsAt:           "April 15th, 2024",
		ConfirmationLink: "http://localhost:3333/trips/3f2b1c9e-7a4d-4e8b-9c1a-2d5e6f7a8b9c/confirm",
	}
	subject, html, text, err := r.Render("trip_invite", data)
	require.NoError(t, err)

	assert.Equal(t, "Confirm your trip to Paris on April 10th, 2024", subject)
	for _, want := range []string{"Paris", "April 10th, 2024", "April 15th, 2024", `href="` + data.ConfirmationLink + `"`} {
		assert.Contains(t, html, want)
	}
	for _, want := range []string{"Paris", "April 10th, 2024", "April 15th, 2024", data.ConfirmationLink} {
		assert.Contains(t, text, want)
	}
}

func TestTemplateRenderer_EscapesHTML(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, html, _, err := r.Render("trip_invite", &domain.TripInviteEmailData{Destination: "<script>x</script>"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, _, _, err = r.Render("does_not_exist", nil)
	require.Error(t, err)
}
