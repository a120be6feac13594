package shell

import "strings"

// confirm asks a yes/no question. Only an explicit "yes" or "y" answers true;
// everything else, including an empty line, is "no".
func (s *Shell) confirm(message string) (bool, error) {
	line, err := s.readLine(message + " [y/N]: ")
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "yes" || answer == "y", nil
}
