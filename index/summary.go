package index

import "sort"

// largestFilesLimit caps the largest-files ranking in the summary.
const largestFilesLimit = 10

// UnknownExtension is the bucket for files without an extension.
const UnknownExtension = "unknown"

// Summarize reduces the completed files mapping into whole-project aggregates.
// discoveryOrder is the order files were found during the walk; it drives both
// deterministic iteration and the tie-break in the largest-files ranking. The
// input mapping is not mutated.
func Summarize(files map[string]*FileRecord, discoveryOrder []string) Summary {
	summary := Summary{
		FilesByExtension: make(map[string]int),
		LargestFiles:     []FileSize{},
	}

	sizes := make([]FileSize, 0, len(discoveryOrder))
	for _, relativePath := range discoveryOrder {
		record, ok := files[relativePath]
		if !ok {
			continue
		}

		summary.TotalFunctions += len(record.Functions)
		summary.TotalClasses += len(record.Classes)
		summary.TotalInterfaces += len(record.Interfaces)
		summary.TotalConstants += len(record.Constants)

		ext := record.Extension
		if ext == "" {
			ext = UnknownExtension
		}
		summary.FilesByExtension[ext]++

		sizes = append(sizes, FileSize{Path: relativePath, Size: record.SizeBytes})
	}

	// Stable sort keeps discovery order between equal sizes
	sort.SliceStable(sizes, func(i, j int) bool {
		return sizes[i].Size > sizes[j].Size
	})
	if len(sizes) > largestFilesLimit {
		sizes = sizes[:largestFilesLimit]
	}
	summary.LargestFiles = sizes

	return summary
}
