package service

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance runs the HTTP contract against any server built around a
// solver limited to n <= 20.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Get count", func(a *biff.A) {
		resp := apiRequest("GET", "/counts/4").Do()
		Save(resp, "Get count", `
			Counts the self-avoiding walks of length n. The count is returned
			as a decimal string so that it never loses precision.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		body := resp.BodyJsonMap()
		biff.AssertEqual(body["n"], json.Number("4"))
		biff.AssertEqual(body["count"], "100")
		biff.AssertEqual(body["digits"], json.Number("3"))
		biff.AssertEqual(body["method"], "stack")
		biff.AssertEqual(body["cached"], false)

		a.Alternative("Get count again", func(a *biff.A) {
			resp := apiRequest("GET", "/counts/4").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyJsonMap()["count"], "100")
			biff.AssertEqual(resp.BodyJsonMap()["cached"], true)
		})

		a.Alternative("List counts", func(a *biff.A) {
			resp := apiRequest("GET", "/counts").Do()
			Save(resp, "List counts", `
				Lists every count computed so far, ordered by n. Use ?from= and
				?to= to narrow the range.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			list := []JSON{}
			json.Unmarshal(resp.BodyBytes(), &list)
			biff.AssertEqual(len(list), 2)
			biff.AssertEqual(list[0]["n"], 0.0)
			biff.AssertEqual(list[0]["count"], "1")
			biff.AssertEqual(list[1]["n"], 4.0)
			biff.AssertEqual(list[1]["count"], "100")
		})

		a.Alternative("List counts in range", func(a *biff.A) {
			resp := apiRequest("GET", "/counts?from=1&to=3").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{})
		})
	})

	a.Alternative("Get count with method", func(a *biff.A) {
		resp := apiRequest("GET", "/counts/5?method=symmetric").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.BodyJsonMap()["count"], "284")
		biff.AssertEqual(resp.BodyJsonMap()["method"], "symmetric")
	})

	a.Alternative("Get count zero", func(a *biff.A) {
		resp := apiRequest("GET", "/counts/0").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.BodyJsonMap()["count"], "1")
	})

	a.Alternative("Get count not a number", func(a *biff.A) {
		resp := apiRequest("GET", "/counts/abc").Do()
		Save(resp, "Get count - invalid", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "invalid argument: walk length must be an integer, got 'abc'",
				"description": "walk length must be a non-negative integer",
			},
		})
	})

	a.Alternative("Get count negative", func(a *biff.A) {
		resp := apiRequest("GET", "/counts/-1").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "invalid argument: walk length must be non-negative, got -1",
				"description": "walk length must be a non-negative integer",
			},
		})
	})

	a.Alternative("Get count too large", func(a *biff.A) {
		resp := apiRequest("GET", "/counts/99").Do()
		Save(resp, "Get count - too large", `
			The server bounds n, the search grows exponentially with it.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusUnprocessableEntity)
	})

	a.Alternative("Get count unknown method", func(a *biff.A) {
		resp := apiRequest("GET", "/counts/3?method=montecarlo").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "unknown method 'montecarlo', must be [recursive|stack|symmetric]",
				"description": "see GET /v1/methods",
			},
		})
	})

	a.Alternative("Post count", func(a *biff.A) {
		resp := apiRequest("POST", "/counts").
			WithBodyJson(JSON{
				"n":      3,
				"method": "recursive",
			}).Do()
		Save(resp, "Post count", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.BodyJsonMap()["count"], "36")
		biff.AssertEqual(resp.BodyJsonMap()["method"], "recursive")
	})

	a.Alternative("Post count invalid bodies", func(a *biff.A) {
		bodies := []string{
			`{"n": -1}`,
			`{"n": 2.5}`,
			`{"n": "3"}`,
			`{"n": 99999999999999999999999}`,
			`{}`,
			`{"n": 3, "size": 2}`,
			`{"n": `,
		}
		for _, body := range bodies {
			resp := apiRequest("POST", "/counts").
				WithBodyString(body).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			biff.AssertNotNil(resp.BodyJsonMap()["error"])
		}
	})

	a.Alternative("Verify", func(a *biff.A) {
		resp := apiRequest("POST", "/counts/10:verify").Do()
		Save(resp, "Verify count", `
			Computes the count and compares it with the published sequence.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"n":        10,
			"count":    "44100",
			"expected": "44100",
			"match":    true,
			"method":   "stack",
		})
	})

	a.Alternative("List methods", func(a *biff.A) {
		resp := apiRequest("GET", "/methods").Do()
		Save(resp, "List methods", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []string{"recursive", "stack", "symmetric"})
	})

	a.Alternative("Create job", func(a *biff.A) {
		resp := apiRequest("POST", "/jobs").
			WithBodyJson(JSON{
				"n": 6,
			}).Do()
		Save(resp, "Create job", `
			Runs the count in the background. Poll the job until its status
			is done or failed.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusAccepted)
		job := resp.BodyJsonMap()
		biff.AssertEqual(job["n"], json.Number("6"))
		biff.AssertEqual(job["status"], "pending")
		jobId, _ := job["id"].(string)
		biff.AssertNotEqual(jobId, "")
		biff.AssertEqual(resp.Header.Get("Location"), "/v1/jobs/"+jobId)

		var done JSON
		deadline := time.Now().Add(30 * time.Second)
		for time.Now().Before(deadline) {
			resp := apiRequest("GET", "/jobs/"+jobId).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			done = resp.BodyJsonMap()
			if done["status"] == "done" || done["status"] == "failed" {
				break
			}
			time.Sleep(5 * time.Millisecond)
		}
		biff.AssertEqual(done["status"], "done")
		biff.AssertEqual(done["count"], "780")

		a.Alternative("Find jobs", func(a *biff.A) {
			resp := apiRequest("POST", "/jobs:find").
				WithBodyJson(JSON{
					"filter": JSON{
						"status": "done",
					},
				}).Do()
			Save(resp, "Find jobs", `
				Streams matching jobs, one JSON document per line.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
			biff.AssertEqual(len(lines), 1)
			found := JSON{}
			json.Unmarshal([]byte(lines[0]), &found)
			biff.AssertEqual(found["id"], jobId)
			biff.AssertEqual(found["count"], "780")
		})

		a.Alternative("Find jobs without match", func(a *biff.A) {
			resp := apiRequest("POST", "/jobs:find").
				WithBodyJson(JSON{
					"filter": JSON{
						"status": "failed",
					},
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.Header.Get("Content-Type"), "application/x-ndjson")
			biff.AssertEqual(strings.TrimSpace(resp.BodyString()), "")
		})

		a.Alternative("List jobs", func(a *biff.A) {
			resp := apiRequest("GET", "/jobs").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			list := []JSON{}
			json.Unmarshal(resp.BodyBytes(), &list)
			biff.AssertEqual(len(list), 1)
			biff.AssertEqual(list[0]["id"], jobId)
		})
	})

	a.Alternative("Create job invalid", func(a *biff.A) {
		resp := apiRequest("POST", "/jobs").
			WithBodyJson(JSON{
				"n": -4,
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Get job not found", func(a *biff.A) {
		resp := apiRequest("GET", "/jobs/does-not-exist").Do()
		Save(resp, "Get job - not found", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "job not found",
				"description": "job does not exist",
			},
		})
	})
}
