//go:build darwin

package inputsource

/*
#cgo LDFLAGS: -framework Carbon -framework CoreFoundation
#include <Carbon/Carbon.h>
#include <stdlib.h>

typedef struct {
    char *id;
    char *name;
} isSource;

static char *cfStringCopyUTF8(CFStringRef str) {
    if (str == NULL) {
        return NULL;
    }
    CFIndex length = CFStringGetLength(str);
    CFIndex size = CFStringGetMaximumSizeForEncoding(length, kCFStringEncodingUTF8) + 1;
    char *buf = malloc(size);
    if (buf == NULL) {
        return NULL;
    }
    if (!CFStringGetCString(str, buf, size, kCFStringEncodingUTF8)) {
        free(buf);
        return NULL;
    }
    return buf;
}

// Keyboard-category, select-capable sources currently enabled.
static CFArrayRef copyEnabledKeyboardSources(void) {
    const void *keys[] = {kTISPropertyInputSourceCategory, kTISPropertyInputSourceIsSelectCapable};
    const void *values[] = {kTISCategoryKeyboardInputSource, kCFBooleanTrue};
    CFDictionaryRef filter = CFDictionaryCreate(kCFAllocatorDefault, keys, values, 2,
                                                &kCFTypeDictionaryKeyCallBacks,
                                                &kCFTypeDictionaryValueCallBacks);
    CFArrayRef list = TISCreateInputSourceList(filter, false);
    CFRelease(filter);
    return list;
}

static int isEnabledSources(isSource **out) {
    *out = NULL;
    CFArrayRef list = copyEnabledKeyboardSources();
    if (list == NULL) {
        return -1;
    }
    CFIndex count = CFArrayGetCount(list);
    if (count == 0) {
        CFRelease(list);
        return 0;
    }
    isSource *items = calloc(count, sizeof(isSource));
    if (items == NULL) {
        CFRelease(list);
        return -1;
    }
    for (CFIndex i = 0; i < count; i++) {
        TISInputSourceRef src = (TISInputSourceRef)CFArrayGetValueAtIndex(list, i);
        items[i].id = cfStringCopyUTF8(TISGetInputSourceProperty(src, kTISPropertyInputSourceID));
        items[i].name = cfStringCopyUTF8(TISGetInputSourceProperty(src, kTISPropertyLocalizedName));
    }
    CFRelease(list);
    *out = items;
    return (int)count;
}

static void isFreeSources(isSource *items, int count) {
    for (int i = 0; i < count; i++) {
        free(items[i].id);
        free(items[i].name);
    }
    free(items);
}

static char *isCurrentSourceID(void) {
    TISInputSourceRef current = TISCopyCurrentKeyboardInputSource();
    if (current == NULL) {
        return NULL;
    }
    char *id = cfStringCopyUTF8(TISGetInputSourceProperty(current, kTISPropertyInputSourceID));
    CFRelease(current);
    return id;
}

// Returns the OSStatus of TISSelectInputSource, or paramErr when the id
// is not among the enabled keyboard sources.
static int isSelectSource(const char *id) {
    CFStringRef wanted = CFStringCreateWithCString(kCFAllocatorDefault, id, kCFStringEncodingUTF8);
    if (wanted == NULL) {
        return paramErr;
    }
    CFArrayRef list = copyEnabledKeyboardSources();
    if (list == NULL) {
        CFRelease(wanted);
        return paramErr;
    }
    OSStatus status = paramErr;
    CFIndex count = CFArrayGetCount(list);
    for (CFIndex i = 0; i < count; i++) {
        TISInputSourceRef src = (TISInputSourceRef)CFArrayGetValueAtIndex(list, i);
        CFStringRef srcID = TISGetInputSourceProperty(src, kTISPropertyInputSourceID);
        if (srcID != NULL && CFStringCompare(srcID, wanted, 0) == kCFCompareEqualTo) {
            status = TISSelectInputSource(src);
            break;
        }
    }
    CFRelease(list);
    CFRelease(wanted);
    return status;
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

type darwinProvider struct{}

func newProvider() Provider {
	return darwinProvider{}
}

func (darwinProvider) Enabled() ([]Source, error) {
	var items *C.isSource
	n := C.isEnabledSources(&items)
	if n < 0 {
		return nil, errors.New("TISCreateInputSourceList failed")
	}
	if n == 0 {
		return nil, nil
	}
	defer C.isFreeSources(items, n)

	raw := unsafe.Slice(items, int(n))
	sources := make([]Source, 0, len(raw))
	for _, it := range raw {
		if it.id == nil {
			continue
		}
		s := Source{ID: C.GoString(it.id)}
		if it.name != nil {
			s.Name = C.GoString(it.name)
		}
		sources = append(sources, s)
	}
	return sources, nil
}

func (darwinProvider) Current() (string, error) {
	id := C.isCurrentSourceID()
	if id == nil {
		return "", errors.New("TISCopyCurrentKeyboardInputSource returned nothing")
	}
	defer C.free(unsafe.Pointer(id))
	return C.GoString(id), nil
}

func (darwinProvider) Select(id string) error {
	cid := C.CString(id)
	defer C.free(unsafe.Pointer(cid))

	if status := C.isSelectSource(cid); status != 0 {
		return fmt.Errorf("TISSelectInputSource: OSStatus %d", int(status))
	}
	return nil
}
