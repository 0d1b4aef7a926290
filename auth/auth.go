package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"folio/db"
	"folio/logger"
	"folio/models"
	"folio/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const storeTimeout = 5 * time.Second

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user, rejecting duplicate emails before any write,
// and issues a session exactly like Login.
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	err := db.UsersCollection.FindOne(ctx, bson.M{"email": input.Email}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		logger.Log.Error("register lookup failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("password hash failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := db.UsersCollection.InsertOne(ctx, user); err != nil {
		insertFailure(w, err)
		return
	}

	issueSession(w, user, http.StatusCreated)
}

// insertFailure answers a failed user insert. A concurrent registration can
// slip past the pre-insert lookup and trip the unique email index; that race
// is still a duplicate email to the client, not a server fault.
func insertFailure(w http.ResponseWriter, err error) {
	if mongo.IsDuplicateKeyError(err) {
		utils.RespondWithError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	logger.Log.Error("register insert failed", zap.Error(err))
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

// Login verifies credentials. Unknown email and wrong password produce the
// same response so callers cannot probe which emails exist.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	err := db.UsersCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email or password")
		return
	}
	if err != nil {
		logger.Log.Error("login lookup failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email or password")
		return
	}

	issueSession(w, user, http.StatusOK)
}

// Logout is public and idempotent: it only overwrites the cookie.
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.SetCookie(w, ExpiredCookie())
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Logged out successfully"})
}

// Me returns the record of the authenticated caller.
func Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid session")
		return
	}

	var user models.User
	err = db.UsersCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid session")
		return
	}
	if err != nil {
		logger.Log.Error("me lookup failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// issueSession sets the cookie and echoes the raw token for clients that
// cannot use cookies.
func issueSession(w http.ResponseWriter, user models.User, status int) {
	token, err := GenerateToken(user, time.Now())
	if err != nil {
		logger.Log.Error("token generation failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	http.SetCookie(w, SessionCookie(token))
	utils.RespondWithJSON(w, status, utils.M{"token": token, "user": user})
}
