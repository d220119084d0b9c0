package enums

import (
	"bytes"
	"errors"
	"io"
	"testing"

	apperrors "github.com/NVIDIA/go-enums/pkg/errors"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestStreamRoundTrip(t *testing.T) {
	for _, v := range colors.Values() {
		var buf bytes.Buffer
		if err := colors.Write(&buf, v); err != nil {
			t.Fatalf("Write(%d): %v", v, err)
		}

		got, err := colors.Read(&buf)
		if err != nil {
			t.Fatalf("Read after Write(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("stream round trip = %d, want %d", got, v)
		}
	}
}

func TestWriteOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	err := colors.Write(&buf, Color(7))
	if err == nil {
		t.Fatal("Write(7) expected error")
	}
	if !apperrors.IsInvalidRepresentation(err) {
		t.Errorf("Write(7) error code = %v, want invalid representation", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Write(7) wrote %q despite error", buf.String())
	}
}

func TestWriteSinkError(t *testing.T) {
	err := colors.Write(failWriter{}, Red)
	if err == nil {
		t.Fatal("Write to failing sink expected error")
	}
	if apperrors.CodeOf(err) != apperrors.ErrCodeInternal {
		t.Errorf("Write sink error code = %v, want internal", err)
	}
}

func TestReadUnknownToken(t *testing.T) {
	buf := bytes.NewBufferString("magenta")
	_, err := colors.Read(buf)
	if err == nil {
		t.Fatal("Read(magenta) expected error")
	}
	if !apperrors.IsInvalidRepresentation(err) {
		t.Errorf("Read(magenta) error code = %v, want invalid representation", err)
	}
}

func TestReadEmptyStream(t *testing.T) {
	_, err := colors.Read(bytes.NewBuffer(nil))
	if err == nil {
		t.Fatal("Read on empty stream expected error")
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("Read on empty stream = %v, want io.EOF in chain", err)
	}
}

func TestReadWhitespaceDelimited(t *testing.T) {
	buf := bytes.NewBufferString("red  green\nblue")

	want := []Color{Red, Green, Blue}
	for _, w := range want {
		got, err := colors.Read(buf)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if got != w {
			t.Errorf("Read = %d, want %d", got, w)
		}
	}

	if _, err := colors.Read(buf); !errors.Is(err, io.EOF) {
		t.Errorf("Read past end = %v, want io.EOF in chain", err)
	}
}

func TestWriteReadSequence(t *testing.T) {
	// Successive writes separated by spaces extract back in order.
	var buf bytes.Buffer
	sequence := []Color{Blue, Red, Green, Red}
	for i, v := range sequence {
		if i > 0 {
			buf.WriteByte(' ')
		}
		if err := colors.Write(&buf, v); err != nil {
			t.Fatalf("Write(%d): %v", v, err)
		}
	}

	for _, want := range sequence {
		got, err := colors.Read(&buf)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if got != want {
			t.Errorf("Read = %d, want %d", got, want)
		}
	}
}
