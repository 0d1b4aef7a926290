package crud

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"folio/filemgr"
	"folio/logger"
	"folio/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const storeTimeout = 5 * time.Second

// Handler is the route-facing surface of one resource; routes attach these
// to verbs without caring which entity is behind them.
type Handler interface {
	List(w http.ResponseWriter, r *http.Request, ps httprouter.Params)
	GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params)
	Create(w http.ResponseWriter, r *http.Request, ps httprouter.Params)
	Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params)
	Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params)
}

// Resource implements the shared CRUD contract for one entity type.
type Resource[T any] struct {
	Desc Descriptor
}

func NewResource[T any](desc Descriptor) *Resource[T] {
	return &Resource[T]{Desc: desc}
}

// List returns every record, newest last (store order). With ?limit= the
// response is an id-ordered page starting after ?cursor=; without it the
// full list is served, via the redis cache when warm.
func (rs *Resource[T]) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit > 0 {
		rs.listPage(ctx, w, r, limit)
		return
	}

	if body, ok := rs.Desc.cachedList(); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
		return
	}

	cursor, err := rs.Desc.Collection.Find(ctx, bson.M{})
	if err != nil {
		rs.internal(w, "list", err)
		return
	}
	defer cursor.Close(ctx)

	records := []T{}
	if err := cursor.All(ctx, &records); err != nil {
		rs.internal(w, "list decode", err)
		return
	}

	body, err := json.Marshal(records)
	if err != nil {
		rs.internal(w, "list encode", err)
		return
	}
	rs.Desc.storeList(body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (rs *Resource[T]) listPage(ctx context.Context, w http.ResponseWriter, r *http.Request, limit int) {
	filter := bson.M{}
	if after := r.URL.Query().Get("cursor"); after != "" {
		id, err := primitive.ObjectIDFromHex(after)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid cursor")
			return
		}
		filter["_id"] = bson.M{"$gt": id}
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}).SetLimit(int64(limit))
	cursor, err := rs.Desc.Collection.Find(ctx, filter, opts)
	if err != nil {
		rs.internal(w, "list page", err)
		return
	}
	defer cursor.Close(ctx)

	records := []T{}
	if err := cursor.All(ctx, &records); err != nil {
		rs.internal(w, "list page decode", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, records)
}

// GetByID treats a malformed id the same as an unknown one: 404.
func (rs *Resource[T]) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		rs.notFound(w)
		return
	}

	var record T
	err = rs.Desc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		rs.notFound(w)
		return
	}
	if err != nil {
		rs.internal(w, "get", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, record)
}

func (rs *Resource[T]) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	payload, err := ParsePayload(r)
	if err != nil {
		rs.fail(w, "create", err)
		return
	}

	now := time.Now()
	doc, err := rs.Desc.BuildCreateDoc(payload, now)
	if err != nil {
		rs.fail(w, "create", err)
		return
	}

	if rs.Desc.ImageField != "" {
		imageURL, err := rs.resolveImage(payload)
		if err != nil {
			rs.fail(w, "create upload", err)
			return
		}
		doc[rs.Desc.ImageField] = imageURL
	}

	doc["_id"] = primitive.NewObjectID()
	if _, err := rs.Desc.Collection.InsertOne(ctx, doc); err != nil {
		rs.internal(w, "insert", err)
		return
	}
	rs.Desc.invalidateList()

	var record T
	if err := rs.Desc.Collection.FindOne(ctx, bson.M{"_id": doc["_id"]}).Decode(&record); err != nil {
		rs.internal(w, "read back", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, record)
}

// Update applies a sparse patch: only keys present in the payload change,
// except the image field, which is recomputed on every call.
func (rs *Resource[T]) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		rs.notFound(w)
		return
	}

	err = rs.Desc.Collection.FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		rs.notFound(w)
		return
	}
	if err != nil {
		rs.internal(w, "update lookup", err)
		return
	}

	payload, err := ParsePayload(r)
	if err != nil {
		rs.fail(w, "update", err)
		return
	}

	patch, err := rs.Desc.BuildPatch(payload, time.Now())
	if err != nil {
		rs.fail(w, "update", err)
		return
	}

	if rs.Desc.ImageField != "" {
		imageURL, err := rs.resolveImage(payload)
		if err != nil {
			rs.fail(w, "update upload", err)
			return
		}
		patch[rs.Desc.ImageField] = imageURL
	}

	if _, err := rs.Desc.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch}); err != nil {
		rs.internal(w, "update", err)
		return
	}
	rs.Desc.invalidateList()

	var record T
	if err := rs.Desc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		rs.internal(w, "read back", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, record)
}

func (rs *Resource[T]) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		rs.notFound(w)
		return
	}

	err = rs.Desc.Collection.FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		rs.notFound(w)
		return
	}
	if err != nil {
		rs.internal(w, "delete lookup", err)
		return
	}

	if _, err := rs.Desc.Collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		rs.internal(w, "delete", err)
		return
	}
	rs.Desc.invalidateList()

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": rs.Desc.Name + " deleted successfully"})
}

// resolveImage picks the stored image URL: uploaded file first, then the
// payload-supplied URL, then empty. The form key is always "image".
func (rs *Resource[T]) resolveImage(p *Payload) (string, error) {
	url, err := filemgr.SaveFormFile(p.Form, "image", rs.Desc.Entity, false)
	if err != nil {
		return "", &ValidationError{msg: err.Error()}
	}
	if url != "" {
		return url, nil
	}
	if raw, ok := p.Values[rs.Desc.ImageField]; ok {
		if s, ok := raw.(string); ok {
			return s, nil
		}
	}
	return "", nil
}

func (rs *Resource[T]) notFound(w http.ResponseWriter) {
	utils.RespondWithError(w, http.StatusNotFound, rs.Desc.Name+" not found")
}

func (rs *Resource[T]) fail(w http.ResponseWriter, op string, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		utils.RespondWithError(w, http.StatusBadRequest, verr.Error())
		return
	}
	rs.internal(w, op, err)
}

func (rs *Resource[T]) internal(w http.ResponseWriter, op string, err error) {
	logger.Log.Error("store operation failed",
		zap.String("entity", rs.Desc.Name),
		zap.String("op", op),
		zap.Error(err),
	)
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
