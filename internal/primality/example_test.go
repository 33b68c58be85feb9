package primality_test

import (
	"context"
	"fmt"

	"github.com/agbru/primecheck/internal/primality"
)

func ExamplePartition() {
	segments, _ := primality.Partition(18, 3)
	for _, s := range segments {
		fmt.Println(s)
	}
	// Output:
	// 0:6
	// 6:12
	// 12:18
}

func ExampleCheckSequential() {
	prime, err := primality.CheckSequential(17, 1)
	fmt.Println(prime, err)
	// Output: true <nil>
}

func ExampleFutureChecker_Collect() {
	outcomes, _ := primality.NewFutureChecker().Collect(context.Background(), 100, 5, primality.Options{PoolSize: 3})
	fmt.Println(len(outcomes), outcomes.Reduce())
	// Output: 5 false
}
