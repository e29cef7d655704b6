package memory

import (
	"sync"

	"confgw/contract"
	"confgw/domain"
)

// ReferRequest is a scriptable inbound call-transfer request.
type ReferRequest struct {
	mu       sync.Mutex
	accepted bool
	rejected bool
	code     domain.RejectCode
	notifies []Notify
	ended    bool
	endCode  int
	endNote  string
	done     chan struct{}
}

type Notify struct {
	Code   int
	Reason string
}

func NewReferRequest() *ReferRequest {
	return &ReferRequest{done: make(chan struct{})}
}

func (r *ReferRequest) Accept() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accepted = true
}

func (r *ReferRequest) Reject(code domain.RejectCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected = true
	r.code = code
}

func (r *ReferRequest) NotifyProgress(code int, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifies = append(r.notifies, Notify{Code: code, Reason: reason})
}

func (r *ReferRequest) End(code int, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ended = true
	r.endCode = code
	r.endNote = reason
}

func (r *ReferRequest) Done() <-chan struct{} {
	return r.done
}

// EndExternally simulates the request's own lifecycle ending first.
func (r *ReferRequest) EndExternally() {
	close(r.done)
}

func (r *ReferRequest) AcceptedCall() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accepted
}

func (r *ReferRequest) RejectedWith() (domain.RejectCode, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.code, r.rejected
}

func (r *ReferRequest) Notifies() []Notify {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notify(nil), r.notifies...)
}

// EndedWith reports the final End call, if any.
func (r *ReferRequest) EndedWith() (int, string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.endCode, r.endNote, r.ended
}

var _ contract.ReferRequest = (*ReferRequest)(nil)

// SubscribeRequest is a scriptable inbound subscription.
type SubscribeRequest struct {
	mu       sync.Mutex
	rejected bool
	code     domain.RejectCode
}

func NewSubscribeRequest() *SubscribeRequest {
	return &SubscribeRequest{}
}

func (s *SubscribeRequest) Reject(code domain.RejectCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejected = true
	s.code = code
}

func (s *SubscribeRequest) RejectedWith() (domain.RejectCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code, s.rejected
}

var _ contract.SubscribeRequest = (*SubscribeRequest)(nil)
