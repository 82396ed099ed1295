// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/bborbe/errors"
	libhttp "github.com/bborbe/http"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/upcoming/mocks"
	"github.com/bborbe/upcoming/pkg/semver"
	"github.com/bborbe/upcoming/pkg/server"
)

var _ = Describe("Server", func() {
	var (
		ctx          context.Context
		mockDetector *mocks.Detector
		router       http.Handler
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDetector = &mocks.Detector{}
		router = server.NewRouter(mockDetector)
	})

	Describe("ListenAndServe", func() {
		It("delegates to the run func", func() {
			called := false
			srv := server.NewServer(func(ctx context.Context) error {
				called = true
				return nil
			})
			Expect(srv.ListenAndServe(ctx)).To(Succeed())
			Expect(called).To(BeTrue())
		})
	})

	Describe("Health endpoint", func() {
		It("returns 200 OK with status ok", func() {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
			Expect(w.Body.String()).To(Equal(`{"status":"ok"}`))
		})

		It("rejects POST", func() {
			req := httptest.NewRequest(http.MethodPost, "/health", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusMethodNotAllowed))
		})
	})

	Describe("Next version endpoint", func() {
		It("returns the calculation", func() {
			calculation, err := semver.Calculate("v1.2.3", []string{"feat: new feature"})
			Expect(err).NotTo(HaveOccurred())
			mockDetector.DetectReturns(calculation, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/next-version", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))

			var response map[string]interface{}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["nextVersion"]).To(Equal("1.3.0"))
			Expect(response["bump"]).To(Equal("minor"))
			Expect(mockDetector.DetectCallCount()).To(Equal(1))
		})

		It("detects again on every request", func() {
			mockDetector.DetectReturnsOnCall(0, semver.Calculation{NextVersion: "1.0.0"}, nil)
			mockDetector.DetectReturnsOnCall(1, semver.Calculation{NextVersion: "1.0.1"}, nil)

			for _, expected := range []string{"1.0.0", "1.0.1"} {
				req := httptest.NewRequest(http.MethodGet, "/api/v1/next-version", nil)
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				var response map[string]interface{}
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["nextVersion"]).To(Equal(expected))
			}
			Expect(mockDetector.DetectCallCount()).To(Equal(2))
		})

		It("returns 500 if detection fails", func() {
			mockDetector.DetectReturns(semver.Calculation{}, errors.New(ctx, "git exploded"))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/next-version", nil)
			w := httptest.NewRecorder()

			libhttp.NewErrorHandler(server.NewNextVersionHandler(mockDetector)).ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})

		It("rejects POST", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/next-version", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusMethodNotAllowed))
			Expect(mockDetector.DetectCallCount()).To(Equal(0))
		})
	})
})
