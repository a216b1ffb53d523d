package utils

import "sync"

// ParallelMap 并发地对 input 中每个元素执行 fn，返回结果切片（与输入顺序一一对应）。
// workers 为最大并发数；输入为空或单元素时直接同步处理，不启 goroutine。
func ParallelMap[T any, R any](input []T, workers int, fn func(T) R) []R {
	n := len(input)
	if n == 0 {
		return []R{}
	}
	if n == 1 || workers <= 1 {
		result := make([]R, n)
		for i, v := range input {
			result[i] = fn(v)
		}
		return result
	}
	if workers > n {
		workers = n
	}

	result := make([]R, n)
	indexCh := make(chan int, n)
	for i := 0; i < n; i++ {
		indexCh <- i
	}
	close(indexCh)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexCh {
				result[i] = fn(input[i])
			}
		}()
	}
	wg.Wait()
	return result
}
