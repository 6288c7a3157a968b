package extract

import "testing"

func Test_javaExtractor_ClassesInterfacesAndMethods(t *testing.T) {
	content := `import java.util.List;
import static java.util.Objects.requireNonNull;

public class IndexService {
    private static final int MAX_BATCH = 100;
    private static final String defaultName = "index";

    public List<String> collect(String root) {
        return null;
    }

    private void reset() {
    }
}

interface Walker {
}

public enum Mode { ONCE, WATCH }
`
	frag := javaExtractor{}.Extract(content)

	if len(frag.Imports) != 2 {
		t.Errorf("imports = %v", frag.Imports)
	}
	if !contains(frag.Classes, "IndexService") || !contains(frag.Exports, "IndexService") {
		t.Errorf("classes = %v, exports = %v", frag.Classes, frag.Exports)
	}
	if !contains(frag.Interfaces, "Walker") || contains(frag.Exports, "Walker") {
		t.Errorf("interfaces = %v, exports = %v", frag.Interfaces, frag.Exports)
	}
	if !contains(frag.Types, "Mode") {
		t.Errorf("types = %v", frag.Types)
	}
	if !contains(frag.Functions, "collect") || !contains(frag.Functions, "reset") {
		t.Errorf("functions = %v", frag.Functions)
	}
	if !contains(frag.Constants, "MAX_BATCH") || contains(frag.Constants, "defaultName") {
		t.Errorf("constants = %v", frag.Constants)
	}
}
