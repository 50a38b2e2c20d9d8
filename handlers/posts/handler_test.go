package posts

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"snapfeed-backend/models"
	"snapfeed-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

const (
	viewerID = "abc12345-e89b-12d3-a456-426614174000"
	otherID  = "def12345-e89b-12d3-a456-426614174000"
)

func postRouter(userID string) *gin.Engine {
	r := testutils.SetupTestRouter()
	withAuth := func(handler gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			// Simuler l'authentification
			c.Set("user_id", userID)
			handler(c)
		}
	}
	r.GET("/posts/feed", withAuth(GetFeed))
	r.GET("/posts/:id", withAuth(GetPostByID))
	r.PATCH("/posts/:id", withAuth(UpdatePost))
	r.DELETE("/posts/:id", withAuth(DeletePost))
	return r
}

// Le feed renvoie les posts du plus récent au plus ancien avec le nom de
// l'auteur, le compteur de likes, le like du viewer et le flag de propriété
func TestGetFeed_Decorations(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "caption", "url", "file_type", "file_name", "created_at"}).
			AddRow("post2", otherID, "plus récent", "https://cdn.example.com/2.jpg", "image", "2.jpg", now).
			AddRow("post1", viewerID, "plus ancien", "https://cdn.example.com/1.mp4", "video", "1.mp4", now.Add(-time.Hour)))

	mock.ExpectQuery(`SELECT "id","user_name" FROM "users" WHERE id IN (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name"}).
			AddRow(viewerID, "moi").
			AddRow(otherID, "alice"))

	mock.ExpectQuery(`SELECT post_id, COUNT\(user_id\) AS count FROM "likes" WHERE post_id IN (.+) GROUP BY (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "count"}).
			AddRow("post2", 3))

	mock.ExpectQuery(`SELECT "post_id" FROM "likes" WHERE post_id IN (.+) AND user_id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow("post2"))

	r := postRouter(viewerID)

	req, _ := http.NewRequest(http.MethodGet, "/posts/feed", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody struct {
		Posts []models.PostFeedItem `json:"posts"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &respBody))
	assert.Len(t, respBody.Posts, 2)

	newest := respBody.Posts[0]
	assert.Equal(t, "post2", newest.ID)
	assert.Equal(t, "alice", newest.UserName)
	assert.Equal(t, 3, newest.LikesCount)
	assert.True(t, newest.IsLiked)
	assert.False(t, newest.IsOwner)

	mine := respBody.Posts[1]
	assert.Equal(t, "post1", mine.ID)
	assert.Equal(t, "moi", mine.UserName)
	assert.Equal(t, 0, mine.LikesCount)
	assert.False(t, mine.IsLiked)
	assert.True(t, mine.IsOwner)
}

func TestGetFeed_Empty(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "caption", "url", "file_type", "file_name", "created_at"}))

	r := postRouter(viewerID)

	req, _ := http.NewRequest(http.MethodGet, "/posts/feed", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody struct {
		Posts []models.PostFeedItem `json:"posts"`
	}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Empty(t, respBody.Posts)
}

func TestGetFeed_Unauthorized(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/posts/feed", GetFeed)

	req, _ := http.NewRequest(http.MethodGet, "/posts/feed", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

// L'auteur dont le profil a disparu est affiché "Unknown"
func TestGetPostByID_UnknownAuthor(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1 (.+) LIMIT (.+)`).
		WithArgs(postID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "caption", "url", "file_type", "file_name", "created_at"}).
			AddRow(postID, "ghost-user", "orphelin", "https://cdn.example.com/x.jpg", "image", "x.jpg", time.Now()))

	mock.ExpectQuery(`SELECT "id","user_name" FROM "users" WHERE id IN (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name"}))

	mock.ExpectQuery(`SELECT post_id, COUNT\(user_id\) AS count FROM "likes" WHERE post_id IN (.+) GROUP BY (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "count"}))

	mock.ExpectQuery(`SELECT "post_id" FROM "likes" WHERE post_id IN (.+) AND user_id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}))

	r := postRouter(viewerID)

	req, _ := http.NewRequest(http.MethodGet, "/posts/"+postID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var item models.PostFeedItem
	json.Unmarshal(resp.Body.Bytes(), &item)
	assert.Equal(t, "Unknown", item.UserName)
}

func TestGetPostByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1 (.+) LIMIT (.+)`).
		WithArgs(postID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := postRouter(viewerID)

	req, _ := http.NewRequest(http.MethodGet, "/posts/"+postID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdatePost_NotOwner(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1 (.+) LIMIT (.+)`).
		WithArgs(postID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "caption"}).
			AddRow(postID, otherID, "pas à moi"))

	r := postRouter(viewerID)

	req, _ := http.NewRequest(http.MethodPatch, "/posts/"+postID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestDeletePost_NotOwner(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1 (.+) LIMIT (.+)`).
		WithArgs(postID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "caption"}).
			AddRow(postID, otherID, "pas à moi"))

	r := postRouter(viewerID)

	req, _ := http.NewRequest(http.MethodDelete, "/posts/"+postID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestDeletePost_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1 (.+) LIMIT (.+)`).
		WithArgs(postID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := postRouter(viewerID)

	req, _ := http.NewRequest(http.MethodDelete, "/posts/"+postID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
