package usecases_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"complainthub.backend/internal/domain/entities"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/infrastructure/storage"
	"complainthub.backend/internal/usecases"
)

// makeFileHeaders builds real multipart file headers the way gin hands them
// to the handler.
func makeFileHeaders(t *testing.T, byName map[string]string) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, contentType := range byName {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("payload-" + name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["files"]
}

func newComplaintUsecaseForTest(t *testing.T, repo *MockComplaintRepository, uow *MockUnitOfWork) (*usecases.ComplaintUsecase, string) {
	t.Helper()
	root := t.TempDir()
	return usecases.NewComplaintUsecase(repo, uow, storage.NewLocalStore(root), 5), root
}

func TestComplaintUsecase_Create_RejectsEmpty(t *testing.T) {
	uc, _ := newComplaintUsecaseForTest(t, new(MockComplaintRepository), new(MockUnitOfWork))

	_, err := uc.Create(context.Background(), uuid.New(), "", nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestComplaintUsecase_Create_RejectsTooManyFiles(t *testing.T) {
	repo := new(MockComplaintRepository)
	uc, root := newComplaintUsecaseForTest(t, repo, new(MockUnitOfWork))

	byName := map[string]string{}
	for _, n := range []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.jpg"} {
		byName[n] = "image/jpeg"
	}
	files := makeFileHeaders(t, byName)
	require.Len(t, files, 6)

	_, err := uc.Create(context.Background(), uuid.New(), "too many", files)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	// nothing was written to disk
	entries, _ := os.ReadDir(filepath.Join(root, "complaints"))
	assert.Empty(t, entries)
}

func TestComplaintUsecase_Create_TextOnly(t *testing.T) {
	repo := new(MockComplaintRepository)
	uow := new(MockUnitOfWork)
	uc, _ := newComplaintUsecaseForTest(t, repo, uow)
	user := uuid.New()

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entities.Complaint) bool {
		return c.UserID == user && c.Text.String == "just text" && c.ID != uuid.Nil
	})).Return(nil).Once()
	repo.On("AddFiles", mock.Anything, mock.MatchedBy(func(files []*entities.ComplaintFile) bool {
		return len(files) == 0
	})).Return(nil).Once()

	complaint, err := uc.Create(context.Background(), user, "just text", nil)
	require.NoError(t, err)
	assert.Equal(t, "just text", complaint.Text.String)
	repo.AssertExpectations(t)
}

func TestComplaintUsecase_Create_WithFiles(t *testing.T) {
	repo := new(MockComplaintRepository)
	uow := new(MockUnitOfWork)
	uc, root := newComplaintUsecaseForTest(t, repo, uow)
	user := uuid.New()

	files := makeFileHeaders(t, map[string]string{
		"photo.JPG":  "image/jpeg",
		"report.pdf": "application/pdf",
	})

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("AddFiles", mock.Anything, mock.MatchedBy(func(rows []*entities.ComplaintFile) bool {
		if len(rows) != 2 {
			return false
		}
		types := map[entities.FileType]bool{}
		for _, r := range rows {
			types[r.FileType] = true
		}
		return types[entities.FileTypeImage] && types[entities.FileTypeDocument]
	})).Return(nil).Once()

	_, err := uc.Create(context.Background(), user, "", files)
	require.NoError(t, err)

	// both files landed in their type directory, extension lowercased
	images, err := os.ReadDir(filepath.Join(root, "complaints", "images"))
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, ".jpg", filepath.Ext(images[0].Name()))

	docs, err := os.ReadDir(filepath.Join(root, "complaints", "documents"))
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestComplaintUsecase_Create_TransactionFailure(t *testing.T) {
	repo := new(MockComplaintRepository)
	uow := new(MockUnitOfWork)
	uc, _ := newComplaintUsecaseForTest(t, repo, uow)

	boom := errors.New("db down")
	uow.On("Do", mock.Anything, mock.Anything).Return(boom).Once()

	_, err := uc.Create(context.Background(), uuid.New(), "doomed", nil)
	assert.ErrorIs(t, err, boom)
}

func TestComplaintUsecase_Delete_Forbidden(t *testing.T) {
	repo := new(MockComplaintRepository)
	uow := new(MockUnitOfWork)
	uc, _ := newComplaintUsecaseForTest(t, repo, uow)

	caller, post := uuid.New(), uuid.New()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("DeleteFiles", mock.Anything, post).Return([]string{"uploads/complaints/images/kept.jpg"}, nil).Once()
	repo.On("DeleteOwned", mock.Anything, post, caller).Return(domainerrors.ErrForbidden).Once()

	err := uc.Delete(context.Background(), caller, post)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	repo.AssertExpectations(t)
}

func TestComplaintUsecase_Delete_Success(t *testing.T) {
	repo := new(MockComplaintRepository)
	uow := new(MockUnitOfWork)
	uc, _ := newComplaintUsecaseForTest(t, repo, uow)

	caller, post := uuid.New(), uuid.New()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("DeleteOwned", mock.Anything, post, caller).Return(nil).Once()
	repo.On("DeleteFiles", mock.Anything, post).Return([]string{"uploads/complaints/images/gone.jpg"}, nil).Once()

	require.NoError(t, uc.Delete(context.Background(), caller, post))
	repo.AssertExpectations(t)
}
