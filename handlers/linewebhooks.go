package handlers

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	lineclient "communityhub/clients/line"
	"communityhub/usecases"
)

// SignatureHeader is the header carrying base64(HMAC-SHA256(body)) computed
// by the LINE platform with the shared channel secret.
const SignatureHeader = "x-line-signature"

type LineWebhooksHandler struct {
	channelSecret string
	lineUseCase   usecases.LineUseCaseInterface
}

func NewLineWebhooksHandler(channelSecret string, lineUseCase usecases.LineUseCaseInterface) *LineWebhooksHandler {
	return &LineWebhooksHandler{
		channelSecret: channelSecret,
		lineUseCase:   lineUseCase,
	}
}

// HandleWebhook is the LINE webhook entry point. The order is a hard
// contract: verify the signature before decoding, decode before dispatching.
// An unauthenticated caller must not be able to trigger parsing work, let
// alone event side effects.
func (h *LineWebhooksHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	log.Printf("📨 LINE webhook received from %s", r.RemoteAddr)

	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Failed to read webhook body: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// A missing signature header is just an invalid signature.
	signature := r.Header.Get(SignatureHeader)
	if !lineclient.VerifySignature(rawBody, signature, h.channelSecret) {
		log.Printf("❌ LINE signature verification failed")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	envelope, err := lineclient.ParseWebhookBody(rawBody)
	if err != nil {
		// A malformed envelope cannot be partially trusted; reject the whole
		// request and let the platform retry it.
		log.Printf("❌ Failed to parse LINE webhook body: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Once verified, the batch completes independently of the caller
	// disconnecting mid-request.
	h.lineUseCase.ProcessWebhookEvents(context.WithoutCancel(r.Context()), envelope)

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *LineWebhooksHandler) SetupEndpoints(router *mux.Router) {
	log.Printf("🚀 Registering LINE webhook endpoint on /line/webhook")
	router.HandleFunc("/line/webhook", h.HandleWebhook).Methods("POST")
	log.Printf("✅ LINE webhook endpoint registered successfully")
}
