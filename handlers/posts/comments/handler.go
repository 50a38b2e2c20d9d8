package comments

import (
	"errors"
	"net/http"
	"snapfeed-backend/commenttree"
	"snapfeed-backend/db"
	"snapfeed-backend/models"
	"snapfeed-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// toRecords convertit les lignes GORM vers les entrées du package commenttree
func toRecords(rows []models.Comment) []commenttree.Record {
	records := make([]commenttree.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, commenttree.Record{
			ID:        row.ID,
			UserID:    row.UserID,
			PostID:    row.PostID,
			ParentID:  row.ParentID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return records
}

// likeAggregates construit les agrégats de likes pour un lot de commentaires:
// compteurs groupés d'un côté, likes du viewer de l'autre, en deux requêtes
func likeAggregates(commentIDs []string, viewerID string) map[string]commenttree.LikeAggregate {
	likes := make(map[string]commenttree.LikeAggregate, len(commentIDs))
	if len(commentIDs) == 0 {
		return likes
	}

	var countRows []struct {
		CommentID string
		Count     int
	}
	db.DB.Model(&models.CommentLike{}).
		Select("comment_id, COUNT(user_id) AS count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&countRows)
	for _, row := range countRows {
		likes[row.CommentID] = commenttree.LikeAggregate{
			Count:  row.Count,
			Likers: map[string]struct{}{},
		}
	}

	var likedIDs []string
	db.DB.Model(&models.CommentLike{}).
		Where("comment_id IN ? AND user_id = ?", commentIDs, viewerID).
		Pluck("comment_id", &likedIDs)
	for _, id := range likedIDs {
		agg, ok := likes[id]
		if !ok {
			agg = commenttree.LikeAggregate{Likers: map[string]struct{}{}}
		}
		agg.Likers[viewerID] = struct{}{}
		likes[id] = agg
	}

	return likes
}

// authorNames résout les noms d'affichage des auteurs d'un lot de commentaires
func authorNames(rows []models.Comment) map[string]string {
	userIDs := make([]string, 0, len(rows))
	seen := map[string]bool{}
	for _, row := range rows {
		if !seen[row.UserID] {
			seen[row.UserID] = true
			userIDs = append(userIDs, row.UserID)
		}
	}

	authors := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return authors
	}

	var users []models.User
	db.DB.Select("id", "user_name").Where("id IN ?", userIDs).Find(&users)
	for _, user := range users {
		authors[user.ID] = user.UserName
	}
	return authors
}

// @Summary Create a new comment
// @Description Create a comment on a post, optionally as a reply to another comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param comment body models.CommentCreate true "Comment content and optional parentId"
// @Security BearerAuth
// @Success 201 {object} commenttree.Node
// @Failure 400 {object} map[string]string "error: Invalid input or parent on another post"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Post or parent comment not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id}/comments [post]
func CreateComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	postID := c.Param("id")

	var input models.CommentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment data: " + err.Error()})
		return
	}

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	// Le parent doit exister et appartenir au même post
	if input.ParentID != nil {
		var parent models.Comment
		if err := db.DB.First(&parent, "id = ?", *input.ParentID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parent comment not found"})
			return
		}
		if parent.PostID != postID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent comment belongs to a different post"})
			return
		}
	}

	comment := models.Comment{
		PostID:   postID,
		UserID:   userID.(string),
		ParentID: input.ParentID,
		Content:  input.Content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating comment: " + err.Error()})
		return
	}

	var user models.User
	db.DB.Select("user_name").Where("id = ?", userID).First(&user)

	userName := user.UserName
	if userName == "" {
		userName = commenttree.UnknownAuthor
	}

	c.JSON(http.StatusCreated, commenttree.Node{
		ID:        comment.ID,
		UserID:    comment.UserID,
		PostID:    comment.PostID,
		ParentID:  comment.ParentID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		UserName:  userName,
		Children:  []*commenttree.Node{},
	})
}

// @Summary Get the comment tree of a post
// @Description Retrieve all comments of a post as a forest: at each level the
// @Description top 3 commented by likes come first, the rest follows chronologically
// @Tags comments
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string][]commenttree.Node
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id}/comments [get]
func GetComments(c *gin.Context) {
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

	var rows []models.Comment
	if err := db.DB.Where("post_id = ?", postID).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	if len(rows) == 0 {
		c.JSON(http.StatusOK, gin.H{"comments": []*commenttree.Node{}})
		return
	}

	commentIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		commentIDs = append(commentIDs, row.ID)
	}

	roots := commenttree.Build(toRecords(rows), likeAggregates(commentIDs, viewerID), authorNames(rows), viewerID)

	c.JSON(http.StatusOK, gin.H{"comments": roots})
}

// @Summary Update a comment
// @Description Update the content of an owned comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param comment body models.CommentUpdate true "New content"
// @Security BearerAuth
// @Success 200 {object} commenttree.Node
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not the owner"
// @Failure 404 {object} map[string]string "error: Comment not found"
// @Router /comments/{id} [patch]
func UpdateComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}
	viewerID := userID.(string)

	commentID := c.Param("id")

	var comment models.Comment
	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.UserID != viewerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this comment"})
		return
	}

	var input models.CommentUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment data: " + err.Error()})
		return
	}

	comment.Content = input.Content
	if err := db.DB.Save(&comment).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating comment: " + err.Error()})
		return
	}

	likes := likeAggregates([]string{comment.ID}, viewerID)
	count, liked := 0, false
	if agg, ok := likes[comment.ID]; ok {
		count = agg.Count
		_, liked = agg.Likers[viewerID]
	}

	var user models.User
	db.DB.Select("user_name").Where("id = ?", comment.UserID).First(&user)

	userName := user.UserName
	if userName == "" {
		userName = commenttree.UnknownAuthor
	}

	c.JSON(http.StatusOK, commenttree.Node{
		ID:         comment.ID,
		UserID:     comment.UserID,
		PostID:     comment.PostID,
		ParentID:   comment.ParentID,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt,
		UpdatedAt:  comment.UpdatedAt,
		UserName:   userName,
		LikesCount: count,
		IsLiked:    liked,
		Children:   []*commenttree.Node{},
	})
}

// @Summary Delete a comment
// @Description Delete an owned comment and its likes. Replies are kept and
// @Description surface at the root of the tree on the next read
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Comment deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not the owner"
// @Failure 404 {object} map[string]string "error: Comment not found"
// @Router /comments/{id} [delete]
func DeleteComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	commentID := c.Param("id")

	var comment models.Comment
	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.UserID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this comment"})
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&comment).Error
	})
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error deleting comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting comment: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// @Summary Like a comment
// @Description Add a like on a comment, idempotent if already liked
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Security BearerAuth
// @Success 201 {object} map[string]string "message: Comment liked successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Comment not found"
// @Router /comments/{id}/like [post]
func LikeComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	commentID := c.Param("id")

	var comment models.Comment
	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	var like models.CommentLike
	result := db.DB.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&like)

	if result.Error == nil {
		c.JSON(http.StatusCreated, gin.H{"message": "Comment already liked"})
		return
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking like: " + result.Error.Error()})
		return
	}

	like = models.CommentLike{
		CommentID: commentID,
		UserID:    userID.(string),
	}

	if err := db.DB.Create(&like).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding like: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment liked successfully"})
}

// @Summary Unlike a comment
// @Description Remove a like from a comment, idempotent if not liked
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Comment unliked successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Comment not found"
// @Router /comments/{id}/like [delete]
func UnlikeComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	commentID := c.Param("id")

	var comment models.Comment
	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	var like models.CommentLike
	result := db.DB.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&like)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "Comment not liked"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking like: " + result.Error.Error()})
		}
		return
	}

	if err := db.DB.Delete(&like).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing like: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment unliked successfully"})
}
