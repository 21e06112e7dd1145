package store

import (
	"os"
	"path/filepath"
	"testing"

	"cvision/internal/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	return s
}

func TestResumeDataDefaultsWhenEmpty(t *testing.T) {
	s := newTestStore(t)

	data, err := s.ResumeData()
	require.NoError(t, err)
	assert.Equal(t, resume.DefaultResumeData(), data)
}

func TestSaveAndReloadResumeData(t *testing.T) {
	s := newTestStore(t)

	data := resume.DefaultResumeData()
	data.PersonalInfo.FullName = "Ada Lovelace"
	data.TargetRole = "Software Engineer"
	require.NoError(t, s.SaveResumeData(data))

	// Confirm the file landed on disk
	_, err := os.Stat(filepath.Join(s.Dir(), KeyResumeData+".json"))
	require.NoError(t, err)

	got, err := s.ResumeData()
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.PersonalInfo.FullName)
	assert.Equal(t, "Software Engineer", got.TargetRole)
}

func TestSettingsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	settings, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, resume.DefaultTemplateSettings(), settings)

	settings.Template = resume.TemplateExecutive
	settings.FontSize = resume.FontLarge
	require.NoError(t, s.SaveSettings(settings))

	got, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, resume.TemplateExecutive, got.Template)
	assert.Equal(t, resume.FontLarge, got.FontSize)
}

func TestSaveCVAssignsIdentity(t *testing.T) {
	s := newTestStore(t)

	data := resume.DefaultResumeData()
	data.PersonalInfo.FullName = "Grace Hopper"

	cv, err := s.SaveCV("navy role", data, resume.DefaultTemplateSettings())
	require.NoError(t, err)
	assert.NotEmpty(t, cv.ID)
	assert.Equal(t, "navy role", cv.Name)
	assert.Equal(t, cv.CreatedAt, cv.UpdatedAt)

	cvs, err := s.SavedCVs()
	require.NoError(t, err)
	require.Len(t, cvs, 1)
	assert.Equal(t, cv.ID, cvs[0].ID)
}

func TestDeleteCV(t *testing.T) {
	s := newTestStore(t)

	first, err := s.SaveCV("first", resume.DefaultResumeData(), resume.DefaultTemplateSettings())
	require.NoError(t, err)
	second, err := s.SaveCV("second", resume.DefaultResumeData(), resume.DefaultTemplateSettings())
	require.NoError(t, err)

	require.NoError(t, s.DeleteCV(first.ID))

	cvs, err := s.SavedCVs()
	require.NoError(t, err)
	require.Len(t, cvs, 1)
	assert.Equal(t, second.ID, cvs[0].ID)

	// Unknown id is a no-op
	require.NoError(t, s.DeleteCV("no-such-id"))
	cvs, err = s.SavedCVs()
	require.NoError(t, err)
	assert.Len(t, cvs, 1)
}

func TestSaveCoverLetter(t *testing.T) {
	s := newTestStore(t)

	letter, err := s.SaveCoverLetter("acme letter", "Acme", "Platform Engineer", "Dear Hiring Manager,")
	require.NoError(t, err)
	assert.NotEmpty(t, letter.ID)
	assert.Equal(t, "Acme", letter.TargetCompany)

	letters, err := s.CoverLetters()
	require.NoError(t, err)
	require.Len(t, letters, 1)
	assert.Equal(t, letter.ID, letters[0].ID)
}

func TestApplicationLifecycle(t *testing.T) {
	s := newTestStore(t)

	app, err := s.AddApplication(resume.JobApplication{
		Company:  "Initech",
		Position: "Backend Engineer",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, resume.StatusApplied, app.Status)
	assert.NotEmpty(t, app.AppliedDate)

	require.NoError(t, s.UpdateApplicationStatus(app.ID, resume.StatusInterviewing))

	apps, err := s.Applications()
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, resume.StatusInterviewing, apps[0].Status)

	err = s.UpdateApplicationStatus("missing", resume.StatusRejected)
	assert.Error(t, err)
}

func TestInvalidateRereadsDisk(t *testing.T) {
	s := newTestStore(t)

	data := resume.DefaultResumeData()
	data.PersonalInfo.FullName = "Before"
	require.NoError(t, s.SaveResumeData(data))

	// Simulate an external edit behind the cache's back
	edited := []byte(`{"personalInfo":{"fullName":"After","email":"","phone":"","location":"","summary":""},"experiences":[],"education":[],"skills":[],"projects":[],"certifications":[]}`)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), KeyResumeData+".json"), edited, 0600))

	got, err := s.ResumeData()
	require.NoError(t, err)
	assert.Equal(t, "Before", got.PersonalInfo.FullName)

	s.Invalidate(KeyResumeData)

	got, err = s.ResumeData()
	require.NoError(t, err)
	assert.Equal(t, "After", got.PersonalInfo.FullName)
}

func TestCorruptBlobReturnsError(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), KeySettings+".json"), []byte("{not json"), 0600))

	_, err := s.Settings()
	assert.Error(t, err)
}

func TestKeyForFile(t *testing.T) {
	assert.Equal(t, KeyResumeData, keyForFile("/data/cvision_data.json"))
	assert.Equal(t, KeyProfile, keyForFile("cvision_profile.json"))
	assert.Empty(t, keyForFile("/data/unrelated.json"))
	assert.Empty(t, keyForFile("/data/cvision_data.json.tmp"))
}
