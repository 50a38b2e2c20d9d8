package users

import (
	"net/http"
	"snapfeed-backend/db"
	"snapfeed-backend/models"
	"snapfeed-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Get the authenticated user profile
// @Description Retrieve the profile of the user from the JWT
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/me [get]
func GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", user)
}

// @Summary Update the authenticated user profile
// @Description Update userName, bio and optionally the profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param userName formData string false "Display name"
// @Param bio formData string false "Biography"
// @Param profilePicture formData file false "Profile picture"
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /users/me [patch]
func UpdateMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	if userName := c.Request.FormValue("userName"); userName != "" {
		user.UserName = userName
	}
	if bio := c.Request.FormValue("bio"); bio != "" {
		user.Bio = bio
	}

	file, err := c.FormFile("profilePicture")
	if err == nil && file != nil {
		pictureURL, _, _, _, err := utils.UploadMedia(file, "profile_pictures")
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Error uploading profile picture: "+err.Error())
			return
		}
		user.ProfilePicture = pictureURL
	}

	if err := db.DB.Save(&user).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating user profile")
		utils.SendError(c, http.StatusInternalServerError, "Error updating profile: "+err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Profile updated successfully", user)
}
