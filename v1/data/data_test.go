package data

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rickhofstede/weaviate-go/v1/connection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authorID = "e067f671-1202-42c6-848b-ff4d1eb804ab"

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	host := strings.TrimPrefix(srv.URL, "http://")
	conn, err := connection.NewConnection(connection.ConnectionParams{
		Config: connection.FromHost(host),
	})
	require.NoError(t, err)

	return NewClient(conn)
}

func TestCreateReturnsServerAssignedID(t *testing.T) {
	var gotBody map[string]interface{}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/objects", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"` + authorID + `"}`))
	}))

	id, err := client.Create(context.Background(), map[string]interface{}{"name": "Neil Gaiman"}, "Author", "", nil)
	require.NoError(t, err)
	assert.Equal(t, authorID, id)
	assert.Equal(t, "Author", gotBody["class"])
	assert.NotContains(t, gotBody, "id", "no id requested, none sent")
}

func TestCreateAlreadyExists(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":[{"message":"id '` + authorID + `' already exists"}]}`))
	}))

	_, err := client.Create(context.Background(), nil, "Author", authorID, nil)
	require.Error(t, err)

	var existsErr *ObjectAlreadyExistsError
	require.True(t, errors.As(err, &existsErr))
	assert.Equal(t, authorID, existsErr.ID)
}

func TestCreateUnexpectedStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":[{"message":"boom"}]}`))
	}))

	_, err := client.Create(context.Background(), nil, "Author", "", nil)
	require.Error(t, err)

	var statusErr *connection.UnexpectedStatusCodeError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "Creating object", statusErr.Operation)
}

func TestUpdatePatchesObject(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/objects/"+authorID, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.Update(context.Background(), map[string]interface{}{"age": 74}, "Author", authorID, nil)
	require.NoError(t, err)
}

func TestReplacePutsObject(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/objects/"+authorID, r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))

	err := client.Replace(context.Background(), map[string]interface{}{"name": "H.P. Lovecraft"}, "Author", authorID, nil)
	require.NoError(t, err)
}

func TestGetByID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/objects/"+authorID, r.URL.Path)
		assert.Equal(t, "age,vector", r.URL.Query().Get("include"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"class":"Author","id":"` + authorID + `","properties":{"name":"H.P. Lovecraft"}}`))
	}))

	obj, err := client.GetByID(context.Background(), authorID, []string{"age"}, true)
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, "Author", obj.Class)
	assert.Equal(t, "H.P. Lovecraft", obj.Properties["name"])
}

func TestGetByIDNotFoundReturnsNil(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	obj, err := client.GetByID(context.Background(), authorID, nil, false)
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestGetListsObjects(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/objects", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"objects":[{"class":"Author"},{"class":"Book"}]}`))
	}))

	objects, err := client.Get(context.Background(), nil, false)
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "Author", objects[0].Class)
	assert.Equal(t, "Book", objects[1].Class)
}

func TestDelete(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/objects/"+authorID, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.Delete(context.Background(), authorID))
}

func TestDeleteRejectsMalformedUUID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for a malformed uuid")
	}))

	assert.Error(t, client.Delete(context.Background(), "not-a-uuid"))
}

func TestExists(t *testing.T) {
	status := http.StatusOK
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if status == http.StatusOK {
			w.Write([]byte(`{"class":"Author"}`))
		}
	}))

	exists, err := client.Exists(context.Background(), authorID)
	require.NoError(t, err)
	assert.True(t, exists)

	status = http.StatusNotFound
	exists, err = client.Exists(context.Background(), authorID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestValidate(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/objects/validate", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	result, err := client.Validate(context.Background(), map[string]interface{}{"name": "H. Lovecraft"}, "Author", "")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Nil(t, result.Error)
}

func TestValidateInvalidObject(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":[{"message":"no such prop with name 'age' found in class 'Author'"}],"valid":false}`))
	}))

	result, err := client.Validate(context.Background(), map[string]interface{}{"age": 46}, "Author", "")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Error, 1)
	assert.Contains(t, result.Error[0]["message"], "no such prop")
}
