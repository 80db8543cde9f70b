package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/imaginarybank/webcore/internal/errors"
)

func TestPresignedTarget_Complete(t *testing.T) {
	full := PresignedTarget{UploadURL: "https://s3.example.com/k", Bucket: "kyc", Key: "reg/1/id_front"}
	assert.True(t, full.Complete())

	assert.False(t, PresignedTarget{Bucket: "kyc", Key: "k"}.Complete())
	assert.False(t, PresignedTarget{UploadURL: "https://s3.example.com/k", Key: "k"}.Complete())
	assert.False(t, PresignedTarget{UploadURL: "https://s3.example.com/k", Bucket: "kyc"}.Complete())
}

func TestPresignedTarget_CheckFile_Oversize(t *testing.T) {
	target := PresignedTarget{DocType: DocTypeIDFront, MaxBytes: 5_000_000, ContentType: "image/jpeg"}
	file := File{Name: "id.jpg", Size: 6_000_000, ContentType: "image/jpeg"}

	err := target.CheckFile(file)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "id_front", appErr.Field)
}

func TestPresignedTarget_CheckFile_ContentTypeMismatch(t *testing.T) {
	target := PresignedTarget{DocType: DocTypeSelfie, MaxBytes: 5_000_000, ContentType: "image/jpeg"}
	file := File{Name: "selfie.png", Size: 1000, ContentType: "image/png"}

	err := target.CheckFile(file)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestPresignedTarget_CheckFile_OK(t *testing.T) {
	target := PresignedTarget{DocType: DocTypeSelfie, MaxBytes: 5_000_000, ContentType: "image/jpeg"}

	assert.NoError(t, target.CheckFile(File{Size: 4_999_999, ContentType: "image/jpeg"}))
	// Case-insensitive content type match.
	assert.NoError(t, target.CheckFile(File{Size: 10, ContentType: "Image/JPEG"}))
}

func TestPresignedTarget_CheckFile_NoDeclaredType(t *testing.T) {
	// A target without an expected content type accepts any declared type.
	target := PresignedTarget{DocType: DocTypeIDFront, MaxBytes: 100}
	assert.NoError(t, target.CheckFile(File{Size: 50, ContentType: "application/octet-stream"}))
}

func TestNewRegistration(t *testing.T) {
	r := NewRegistration()

	assert.Equal(t, StateCollecting, r.State)
	assert.NotNil(t, r.Slots)
	assert.NotNil(t, r.Uploaded)
	assert.NotNil(t, r.IdempotencyKeys)

	_, ok := r.Slot(DocTypeIDFront)
	assert.False(t, ok)
}
