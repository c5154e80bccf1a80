package logging

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

type causer struct{ cause error }

func (c causer) Error() string { return "outer" }
func (c causer) Cause() error  { return c.cause }

func TestStackTraceStringSuppressed(t *testing.T) {
	t.Parallel()

	dns := &net.DNSError{Err: "no such host", Name: "assets.example.invalid", IsNotFound: true}

	deep := error(dns)
	for i := 0; i < 10; i++ {
		deep = fmt.Errorf("level %d: %w", i, deep)
	}

	tt := []struct {
		name string
		err  error
	}{
		{"Nil", nil},
		{"DNS Error", dns},
		{"Wrapped", fmt.Errorf("fetch manifest: %w", dns)},
		{"Wrapped With Stack", pkgerrors.Wrap(dns, "fetch manifest")},
		{"Joined", errors.Join(errors.New("first"), dns)},
		{"Deeply Nested", deep},
		{"Behind Stack And Message", pkgerrors.WithMessage(pkgerrors.WithStack(dns), "retry")},
		{"Behind Cause", causer{cause: dns}},
		{"Cause Then Wrap", fmt.Errorf("sync: %w", causer{cause: fmt.Errorf("resolve: %w", dns)})},
		{"Joined Behind Cause", causer{cause: errors.Join(errors.New("first"), causer{cause: dns})}},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := StackTraceString(tc.err); got != "" {
				t.Fatalf("expected empty trace, got %q", got)
			}
		})
	}
}

func TestStackTraceString(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")

	tt := []struct {
		name         string
		err          error
		want         string
		contains     []string
		wantCausedBy int
	}{
		{
			name: "Plain Error",
			err:  base,
			want: "*errors.errorString: boom\n",
		},
		{
			name: "Wrapped Chain",
			err:  fmt.Errorf("load level: %w", base),
			want: "*fmt.wrapError: load level: boom\nCaused by: *errors.errorString: boom\n",
		},
		{
			name: "Cause Only Chain",
			err:  causer{cause: base},
			want: "logging.causer: outer\nCaused by: *errors.errorString: boom\n",
		},
		{
			name: "Joined",
			err:  errors.Join(errors.New("a"), errors.New("b")),
			want: "*errors.joinError: a\nb\nSuppressed: *errors.errorString: a\nSuppressed: *errors.errorString: b\n",
		},
		{
			name: "Stack From New",
			err:  pkgerrors.New("boom"),
			contains: []string{
				"*errors.fundamental: boom\n",
				"\tat TestStackTraceString (stacktrace_test.go:",
			},
		},
		{
			name: "Stack Attached To Plain Error",
			err:  pkgerrors.WithStack(base),
			contains: []string{
				"*errors.withStack: boom\n",
				"\tat TestStackTraceString (stacktrace_test.go:",
			},
		},
		{
			name: "Wrap Of Stacked Error",
			err:  pkgerrors.Wrap(pkgerrors.New("boom"), "open asset"),
			contains: []string{
				"*errors.withStack: open asset: boom\n",
				"Caused by: *errors.fundamental: boom\n",
			},
			wantCausedBy: 1,
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := StackTraceString(tc.err)
			if tc.want != "" && got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
			for _, s := range tc.contains {
				if !strings.Contains(got, s) {
					t.Fatalf("expected trace to contain %q, got:\n%s", s, got)
				}
			}
			if tc.want == "" {
				if n := strings.Count(got, "Caused by: "); n != tc.wantCausedBy {
					t.Fatalf("want %d Caused by blocks, got %d:\n%s", tc.wantCausedBy, n, got)
				}
			}
			if !strings.HasSuffix(got, "\n") || strings.Count(got, "\n") < 1 {
				t.Fatalf("expected newline terminated rendering, got %q", got)
			}
		})
	}
}
