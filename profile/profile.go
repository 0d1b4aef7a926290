package profile

import (
	"context"
	"errors"
	"net/http"
	"time"

	"folio/db"
	"folio/filemgr"
	"folio/logger"
	"folio/models"
	"folio/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const storeTimeout = 5 * time.Second

// UpdateProfileImage replaces the authenticated user's profile image with
// an uploaded file (form key "profileImage") and regenerates its thumbnail.
func UpdateProfileImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid session")
		return
	}

	if err := r.ParseMultipartForm(filemgr.MaxFileSize + (1 << 20)); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	if err := filemgr.CheckForm(r.MultipartForm); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	files := r.MultipartForm.File["profileImage"]
	if len(files) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required file: profileImage")
		return
	}

	imageURL, _, err := filemgr.SaveImageWithThumb(files[0], filemgr.EntityUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	update := bson.M{"$set": bson.M{"profileImageUrl": imageURL, "updatedAt": time.Now()}}
	if _, err := db.UsersCollection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		logger.Log.Error("profile image update failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var user models.User
	if err := db.UsersCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		logger.Log.Error("profile read back failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// AboutImage serves the site owner's profile image URL for the public
// about section. The owner is the earliest registered user.
func AboutImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	var owner models.User
	err := db.UsersCollection.FindOne(ctx, bson.M{}, opts).Decode(&owner)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"imageUrl": ""})
		return
	}
	if err != nil {
		logger.Log.Error("about image lookup failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"imageUrl": owner.ProfileImageURL})
}
