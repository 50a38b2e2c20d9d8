package posts

import (
	"errors"
	"net/http"
	"snapfeed-backend/db"
	"snapfeed-backend/models"
	"snapfeed-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// feedDecorations récupère en deux requêtes les noms d'auteurs, les compteurs
// de likes et les likes du viewer pour un lot de posts (pas de N+1)
func feedDecorations(posts []models.Post, viewerID string) (map[string]string, map[string]int, map[string]bool) {
	userIDs := make([]string, 0, len(posts))
	postIDs := make([]string, 0, len(posts))
	seen := map[string]bool{}
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
		if !seen[post.UserID] {
			seen[post.UserID] = true
			userIDs = append(userIDs, post.UserID)
		}
	}

	userNames := make(map[string]string, len(userIDs))
	if len(userIDs) > 0 {
		var users []models.User
		db.DB.Select("id", "user_name").Where("id IN ?", userIDs).Find(&users)
		for _, user := range users {
			userNames[user.ID] = user.UserName
		}
	}

	likeCounts := make(map[string]int, len(postIDs))
	viewerLikes := make(map[string]bool)
	if len(postIDs) > 0 {
		var countRows []struct {
			PostID string
			Count  int
		}
		db.DB.Model(&models.Like{}).
			Select("post_id, COUNT(user_id) AS count").
			Where("post_id IN ?", postIDs).
			Group("post_id").
			Scan(&countRows)
		for _, row := range countRows {
			likeCounts[row.PostID] = row.Count
		}

		var likedIDs []string
		db.DB.Model(&models.Like{}).
			Where("post_id IN ? AND user_id = ?", postIDs, viewerID).
			Pluck("post_id", &likedIDs)
		for _, id := range likedIDs {
			viewerLikes[id] = true
		}
	}

	return userNames, likeCounts, viewerLikes
}

func feedItem(post models.Post, viewerID string, userNames map[string]string, likeCounts map[string]int, viewerLikes map[string]bool) models.PostFeedItem {
	userName, ok := userNames[post.UserID]
	if !ok || userName == "" {
		userName = "Unknown"
	}

	return models.PostFeedItem{
		Post:       post,
		UserName:   userName,
		LikesCount: likeCounts[post.ID],
		IsLiked:    viewerLikes[post.ID],
		IsOwner:    post.UserID == viewerID,
	}
}

// @Summary Create a new post
// @Description Upload a media file (image or video) and create a post
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Media file"
// @Param caption formData string false "Post caption"
// @Security BearerAuth
// @Success 201 {object} models.Post
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts [post]
func CreatePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil || file == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Media file is required"})
		return
	}

	caption := c.Request.FormValue("caption")

	url, fileID, fileType, fileName, err := utils.UploadMedia(file, "posts")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading media: " + err.Error()})
		return
	}

	post := models.Post{
		UserID:   userID.(string),
		Caption:  caption,
		URL:      url,
		FileType: fileType,
		FileName: fileName,
		FileID:   fileID,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating post: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// @Summary Get the feed
// @Description Retrieve all posts, newest first, with author and like information
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]models.PostFeedItem
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/feed [get]
func GetFeed(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}
	viewerID := userID.(string)

	var posts []models.Post
	if err := db.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving posts: " + err.Error()})
		return
	}

	userNames, likeCounts, viewerLikes := feedDecorations(posts, viewerID)

	items := make([]models.PostFeedItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, feedItem(post, viewerID, userNames, likeCounts, viewerLikes))
	}

	c.JSON(http.StatusOK, gin.H{"posts": items})
}

// @Summary Get a post by ID
// @Description Retrieve a post with author and like information
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} models.PostFeedItem
// @Failure 404 {object} map[string]string "error: Post not found"
// @Router /posts/{id} [get]
func GetPostByID(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}
	viewerID := userID.(string)

	postID := c.Param("id")

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	userNames, likeCounts, viewerLikes := feedDecorations([]models.Post{post}, viewerID)

	c.JSON(http.StatusOK, feedItem(post, viewerID, userNames, likeCounts, viewerLikes))
}

// @Summary Update a post
// @Description Update the caption and/or replace the media file of a post
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Post ID"
// @Param caption formData string false "New caption"
// @Param file formData file false "Replacement media file"
// @Security BearerAuth
// @Success 200 {object} models.Post
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not the owner"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Router /posts/{id} [patch]
func UpdatePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	postID := c.Param("id")

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving post: " + err.Error()})
		}
		return
	}

	if post.UserID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this post"})
		return
	}

	if caption := c.Request.FormValue("caption"); caption != "" {
		post.Caption = caption
	}

	file, err := c.FormFile("file")
	if err == nil && file != nil {
		// Supprimer l'ancien média avant de télécharger le nouveau
		utils.DeleteMedia(post.FileID, post.FileType)

		url, fileID, fileType, fileName, err := utils.UploadMedia(file, "posts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading media: " + err.Error()})
			return
		}

		post.URL = url
		post.FileID = fileID
		post.FileType = fileType
		post.FileName = fileName
	}

	if err := db.DB.Save(&post).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating post: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}

// @Summary Delete a post
// @Description Delete a post, its media file, its likes and its comments
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Post deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not the owner"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Router /posts/{id} [delete]
func DeletePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	postID := c.Param("id")

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving post: " + err.Error()})
		}
		return
	}

	if post.UserID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this post"})
		return
	}

	utils.DeleteMedia(post.FileID, post.FileType)

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM comment_likes WHERE comment_id IN (SELECT id FROM comments WHERE post_id = ?)`, postID).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error deleting post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting post: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
