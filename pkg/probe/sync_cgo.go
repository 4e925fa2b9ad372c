//go:build cgo && (linux || darwin)

package probe

/*
#include <stdint.h>
#include <pthread.h>
#include <semaphore.h>

static uintptr_t shmprobe_sem_failed(void) { return (uintptr_t)SEM_FAILED; }
static int shmprobe_process_shared(void) { return PTHREAD_PROCESS_SHARED; }
*/
import "C"

import "context"

// syncFacts reads the sizes and special constants of the POSIX
// synchronization primitives straight from the platform headers. The fact
// order matches the historical C diagnostic output.
func syncFacts(_ context.Context) ([]Fact, error) {
	return []Fact{
		{Name: "sem_t", Kind: FactSize, Value: uint64(C.sizeof_sem_t)},
		{Name: "pthread_mutexattr_t", Kind: FactSize, Value: uint64(C.sizeof_pthread_mutexattr_t)},
		{Name: "pthread_rwlockattr_t", Kind: FactSize, Value: uint64(C.sizeof_pthread_rwlockattr_t)},
		{Name: "pthread_rwlock_t", Kind: FactSize, Value: uint64(C.sizeof_pthread_rwlock_t)},
		{Name: "SEM_FAILED", Kind: FactAddress, Value: uint64(C.shmprobe_sem_failed())},
		{Name: "PTHREAD_PROCESS_SHARED", Kind: FactFlag, Value: uint64(C.shmprobe_process_shared())},
	}, nil
}
