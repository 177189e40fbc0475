package common

import (
	"errors"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("secret1")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{
		ErrorNotFound, ErrUniquenessViolation, ErrorInternal, ErrorValidation,
		ErrDuplicateEmail, ErrInvalidCredentials, ErrStoreUnavailable,
		ErrInvalidToken, ErrUnauthenticated,
	}
	for i := range all {
		for j := range all {
			if i != j && errors.Is(all[i], all[j]) {
				t.Fatalf("%v must not match %v", all[i], all[j])
			}
		}
	}
}
