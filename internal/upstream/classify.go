package upstream

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"
)

// transientErrnos - сетевые ошибки ОС, после которых есть смысл повторить запрос.
var transientErrnos = []syscall.Errno{
	syscall.ECONNRESET,
	syscall.ECONNREFUSED,
	syscall.ECONNABORTED,
	syscall.EPIPE,
	syscall.ETIMEDOUT,
	syscall.EHOSTUNREACH,
	syscall.ENETUNREACH,
}

// Retryable - решает, стоит ли повторять попытку после ошибки err.
func Retryable(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Retryable()
	}
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return isTransient(tErr.Err)
	}
	return false
}

// isTransient - классификация по типам ошибок транспорта, а не по тексту.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	// отмена вызывающим - не сбой сети
	if errors.Is(err, context.Canceled) {
		return false
	}
	// таймаут отдельной попытки
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	for _, errno := range transientErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	// соединение закрыто сервером посреди ответа ("socket hang up")
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
