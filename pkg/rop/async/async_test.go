package async_test

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/ib-77/ropt/pkg/rop"
	. "github.com/ib-77/ropt/pkg/rop/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Future", func() {
	It("settles once", func() {
		f, r := NewFuture[string]()
		Consistently(f.Done()).ShouldNot(BeClosed())

		r.Resolve("first", nil)
		r.Resolve("second", errors.New("late"))

		Eventually(f.Done()).Should(BeClosed())
		v, err := f.Wait()
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal("first"))
	})

	It("can be waited on from several goroutines", func() {
		f, r := NewFuture[int]()
		results := make(chan int, 3)
		for range 3 {
			go func() {
				v, _ := f.Wait()
				results <- v
			}()
		}
		r.Resolve(7, nil)

		for range 3 {
			Eventually(results).Should(Receive(Equal(7)))
		}
	})

	It("passes the context to the computation", func() {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")

		f := Go(ctx, func(ctx context.Context) (any, error) {
			return ctx.Value(key{}), nil
		})

		Expect(f.Wait()).To(Equal("v"))
	})

	It("returns a panic as an error", func() {
		f := Go(context.Background(), func(context.Context) (int, error) {
			panic("boom")
		})

		_, err := f.Wait()
		var pe *rop.PanicError
		Expect(errors.As(err, &pe)).To(BeTrue())
		Expect(pe.Value).To(Equal("boom"))
	})
})

var _ = Describe("Capture", func() {
	It("wraps a resolved value in Ok", func() {
		res := Capture(Go(context.Background(), func(context.Context) (int, error) {
			return 5, nil
		}))

		Expect(res.IsOk()).To(BeTrue())
		Expect(res.Unwrap()).To(Equal(5))
	})

	It("wraps a rejection in Err", func() {
		res := Capture(Go(context.Background(), func(context.Context) (int, error) {
			return 0, errors.New("fail")
		}))

		Expect(res.IsErr()).To(BeTrue())
		Expect(res.UnwrapErr()).To(MatchError("fail"))
	})

	It("wraps a panic in Err", func() {
		cause := errors.New("crashed")
		res := Capture(Go(context.Background(), func(context.Context) (int, error) {
			panic(cause)
		}))

		Expect(res.UnwrapErr()).To(MatchError(cause))
	})

	It("waits for a computation that is already running", func() {
		gate := make(chan struct{})
		f := Go(context.Background(), func(context.Context) (string, error) {
			<-gate
			return "done", nil
		})

		captured := make(chan rop.Result[string], 1)
		go func() { captured <- Capture(f) }()

		Consistently(captured, 50*time.Millisecond).ShouldNot(Receive())
		close(gate)

		var res rop.Result[string]
		Eventually(captured).Should(Receive(&res))
		Expect(res.Unwrap()).To(Equal("done"))
	})

	It("does not give up when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res := From(ctx, func(ctx context.Context) (int, error) {
			time.Sleep(10 * time.Millisecond)
			return 1, nil
		})

		Expect(res.Unwrap()).To(Equal(1))
	})

	It("lets the computation observe cancellation itself", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res := From(ctx, func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})

		Expect(res.UnwrapErr()).To(MatchError(context.Canceled))
	})
})

var _ = Describe("OptionFrom", func() {
	It("maps nil to None", func() {
		o, err := OptionFrom(context.Background(), func(context.Context) (*int, error) {
			return nil, nil
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(o.IsNone()).To(BeTrue())
	})

	It("keeps zero values", func() {
		o, err := OptionFrom(context.Background(), func(context.Context) (int, error) {
			return 0, nil
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(o).To(Equal(rop.Some(0)))
	})

	It("returns errors uncaught", func() {
		o, err := OptionFrom(context.Background(), func(context.Context) (string, error) {
			return "", errors.New("rejected")
		})

		Expect(err).To(MatchError("rejected"))
		Expect(o.IsNone()).To(BeTrue())
	})

	It("raises panics in the waiting goroutine", func() {
		Expect(func() {
			_, _ = OptionFrom(context.Background(), func(context.Context) (int, error) {
				panic("boom")
			})
		}).To(PanicWith("boom"))
	})
})
