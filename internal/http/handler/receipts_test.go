package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"receiptchain/internal/core"
	"receiptchain/internal/http/handler"
	"receiptchain/internal/http/handler/fake"
	"receiptchain/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("ReceiptHandler", func() {
	const txHash = "0x9b1a2f0c4b0c6e5f8f0f1d7c4f2f3a7e6f5d4c3b2a1908f7e6d5c4b3a2918f7e"

	var (
		rh            *handler.ReceiptHandler
		fakeService   *fake.ReceiptService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		mux           *http.ServeMux
		w             *httptest.ResponseRecorder
		req           *http.Request
		testToken     string
		fakeErr       error
	)

	decodeData := func(target any) {
		var resp struct {
			Data json.RawMessage `json:"data"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(json.Unmarshal(resp.Data, target)).To(Succeed())
	}

	BeforeEach(func() {
		testToken = "test-token"
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.ReceiptService)
		fakeService.AuthenticateReturns(testToken, nil)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.DecodeValidator{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		rh = handler.NewReceiptHandler(fakeLogger, fakeValidator, fakeService)

		mux = http.NewServeMux()
		mux.HandleFunc(handler.Authenticate, rh.HandleAuthenticate)
		mux.HandleFunc(handler.GetProfile, rh.HandleGetProfile)
		mux.HandleFunc(handler.UpdateProfile, rh.HandleUpdateProfile)
		mux.HandleFunc(handler.LookupTransaction, rh.HandleLookupTransaction)
		mux.HandleFunc(handler.CreateReceipt, rh.HandleCreateReceipt)
		mux.HandleFunc(handler.ListReceipts, rh.HandleListReceipts)
		mux.HandleFunc(handler.GetReceipt, rh.HandleGetReceipt)
		mux.HandleFunc(handler.PreviewReceipt, rh.HandlePreviewReceipt)
		mux.HandleFunc(handler.ExportReceipt, rh.HandleExportReceipt)
		mux.HandleFunc(handler.GetDashboard, rh.HandleDashboard)
		mux.HandleFunc(handler.Metrics, handler.HandleMetrics)
	})

	JustBeforeEach(func() {
		mux.ServeHTTP(w, req)
	})

	Describe("HandleAuthenticate", func() {
		var response map[string]string

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"test","password":"pass"}`)
			req = httptest.NewRequest("POST", "/receiptchain/authenticate", body)
			req.Header.Set("Content-Type", "application/json")
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["token"]).To(Equal(testToken))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "test", Password: "pass"}))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(1))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("authentication fails due to incorrect credentials", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrIncorrectPassword.Error()))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should hide the error detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("profile", func() {
		When("the auth token is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/receiptchain/profile", nil)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.GetProfileCallCount()).To(Equal(0))
			})
		})

		When("the profile is requested with a token", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/receiptchain/profile", nil)
				req.Header.Set("AUTH_TOKEN", testToken)
				fakeService.GetProfileReturns(core.Profile{Name: "Guest User", Email: "No email set"}, nil)
			})

			It("should return the profile", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var profile core.Profile
				decodeData(&profile)
				Expect(profile.Name).To(Equal("Guest User"))
				_, token := fakeService.GetProfileArgsForCall(0)
				Expect(token).To(Equal(testToken))
			})
		})

		When("the profile is updated", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("PUT", "/receiptchain/profile", strings.NewReader(`{"name":"Jane","email":"jane@example.com"}`))
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should pass the new profile to the service", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, token, profile := fakeService.UpdateProfileArgsForCall(0)
				Expect(token).To(Equal(testToken))
				Expect(profile).To(Equal(core.Profile{Name: "Jane", Email: "jane@example.com"}))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("PUT", "/receiptchain/profile", strings.NewReader(`{"name":"Jane"}`))
				req.Header.Set("AUTH_TOKEN", "bad")
				fakeService.UpdateProfileReturns(core.ErrInvalidToken)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleLookupTransaction", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/receiptchain/transactions/"+txHash, nil)
		})

		When("the transfer is found", func() {
			BeforeEach(func() {
				fakeService.LookupTransactionReturns(core.TransferRecord{
					TransactionHash: txHash,
					Amount:          "12.5 USDC",
					Currency:        "USDC",
				}, nil)
			})

			It("should return it", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var transfer core.TransferRecord
				decodeData(&transfer)
				Expect(transfer.Amount).To(Equal("12.5 USDC"))
				_, hash := fakeService.LookupTransactionArgsForCall(0)
				Expect(hash).To(Equal(txHash))
			})
		})

		When("the hash is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/receiptchain/transactions/0x1234", nil)
			})

			It("should return 400 without calling the chain", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.LookupTransactionCallCount()).To(Equal(0))
			})
		})

		When("the transaction does not exist", func() {
			BeforeEach(func() {
				fakeService.LookupTransactionReturns(core.TransferRecord{}, core.ErrTransactionNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the node fails", func() {
			BeforeEach(func() {
				fakeService.LookupTransactionReturns(core.TransferRecord{}, fakeErr)
			})

			It("should return 502", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
			})
		})
	})

	Describe("HandleCreateReceipt", func() {
		var body string

		BeforeEach(func() {
			body = `{"txHash":"` + txHash + `","amount":"12.5 USDC","date":"3/15/2024",` +
				`"customerName":"Jane Doe","customerEmail":"jane@example.com","purpose":"Consulting"}`
			fakeService.CreateReceiptReturns(core.ReceiptRecord{ReceiptID: "RCP-000123", TxHash: txHash}, nil)
		})

		Context("with a valid form", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/receiptchain/receipts", strings.NewReader(body))
			})

			It("should create the receipt", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				var record core.ReceiptRecord
				decodeData(&record)
				Expect(record.ReceiptID).To(Equal("RCP-000123"))

				_, form := fakeService.CreateReceiptArgsForCall(0)
				Expect(form.CustomerEmail).To(Equal("jane@example.com"))
				Expect(form.Amount).To(Equal("12.5 USDC"))
			})
		})

		Context("with an invalid email", func() {
			BeforeEach(func() {
				body = strings.Replace(body, "jane@example.com", "jane", 1)
				req = httptest.NewRequest("POST", "/receiptchain/receipts", strings.NewReader(body))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CreateReceiptCallCount()).To(Equal(0))
			})
		})

		Context("when the store fails", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/receiptchain/receipts", strings.NewReader(body))
				fakeService.CreateReceiptReturns(core.ReceiptRecord{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("reading receipts", func() {
		When("listing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/receiptchain/receipts", nil)
				fakeService.ListReceiptsReturns([]core.ReceiptRecord{{ReceiptID: "RCP-2"}, {ReceiptID: "RCP-1"}}, nil)
			})

			It("should return every receipt in order", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp map[string][]core.ReceiptRecord
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp["receipts"]).To(HaveLen(2))
				Expect(resp["receipts"][0].ReceiptID).To(Equal("RCP-2"))
			})
		})

		When("getting an unknown receipt", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/receiptchain/receipts/RCP-404", nil)
				fakeService.GetReceiptReturns(core.ReceiptRecord{}, core.ErrReceiptNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				_, id := fakeService.GetReceiptArgsForCall(0)
				Expect(id).To(Equal("RCP-404"))
			})
		})

		When("loading the dashboard", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/receiptchain/dashboard", nil)
				fakeService.DashboardReturns(core.Dashboard{
					Stats: core.Stats{TotalReceipts: 2, TotalValue: "3.00", Currency: "ETH"},
				}, nil)
			})

			It("should return the stats", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var dashboard core.Dashboard
				decodeData(&dashboard)
				Expect(dashboard.Stats.TotalReceipts).To(Equal(2))
				Expect(dashboard.Stats.TotalValue).To(Equal("3.00"))
			})
		})

		When("previewing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/receiptchain/receipts/RCP-1/preview", nil)
				fakeService.PreviewReceiptReturns([]byte("<html>receipt</html>"), nil)
			})

			It("should return html", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Header().Get("Content-Type")).To(HavePrefix("text/html"))
				Expect(w.Body.String()).To(Equal("<html>receipt</html>"))
			})
		})
	})

	Describe("HandleExportReceipt", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/receiptchain/receipts/RCP-123456/export", nil)
		})

		When("the PDF is rendered and emailed", func() {
			BeforeEach(func() {
				fakeService.ExportReceiptReturns(core.ExportResult{
					Filename:  "receipt-RCP-123456.pdf",
					PDF:       []byte("%PDF-1.3"),
					EmailSent: true,
				}, nil)
			})

			It("should download the PDF", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Header().Get("Content-Type")).To(Equal("application/pdf"))
				Expect(w.Header().Get("Content-Disposition")).To(Equal(`attachment; filename="receipt-RCP-123456.pdf"`))
				Expect(w.Header().Get("X-Email-Status")).To(Equal("sent"))
				Expect(w.Body.Bytes()).To(Equal([]byte("%PDF-1.3")))
				_, id := fakeService.ExportReceiptArgsForCall(0)
				Expect(id).To(Equal("RCP-123456"))
			})
		})

		When("the email fails", func() {
			BeforeEach(func() {
				fakeService.ExportReceiptReturns(core.ExportResult{
					Filename: "receipt-RCP-123456.pdf",
					PDF:      []byte("%PDF-1.3"),
					EmailErr: fakeErr,
				}, nil)
			})

			It("should still download the PDF", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Header().Get("X-Email-Status")).To(Equal("failed"))
				Expect(w.Body.Bytes()).To(Equal([]byte("%PDF-1.3")))
			})
		})

		When("the receipt is unknown", func() {
			BeforeEach(func() {
				fakeService.ExportReceiptReturns(core.ExportResult{}, core.ErrReceiptNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
			})
		})
	})

	Describe("HandleMetrics", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/metrics", nil)
		})

		It("should write prometheus text", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("go_goroutines"))
		})
	})
})
